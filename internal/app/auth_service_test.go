package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"quiz-backend/internal/app"
	"quiz-backend/internal/auth"
	"quiz-backend/internal/domain"
	"quiz-backend/internal/infra/memory"
)

type authFixture struct {
	users   *memory.UserStore
	service *app.AuthService
	now     time.Time
}

func newAuthFixture() *authFixture {
	f := &authFixture{users: memory.NewUserStore(), now: time.Now()}
	issuer := auth.NewIssuer("test-secret", 30*time.Minute, 24*time.Hour).WithClock(func() time.Time { return f.now })
	f.service = app.NewAuthService(f.users, memory.NewTokenRevoker(), issuer)
	return f
}

func registration(username string) app.Registration {
	return app.Registration{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "s3cret-pass",
		FirstName: "Test",
	}
}

func TestRegisterIssuesUsableTokens(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()

	user, tokens, err := f.service.Register(ctx, registration("alice"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 || user.IsStaff || !user.IsActive {
		t.Fatalf("unexpected user %+v", user)
	}
	if user.PasswordHash == "" || user.PasswordHash == "s3cret-pass" {
		t.Fatalf("password must be stored hashed")
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", tokens)
	}

	got, err := f.service.Authenticate(ctx, tokens.AccessToken)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, got.ID)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	if _, _, err := f.service.Register(ctx, registration("alice")); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := f.service.Register(ctx, registration("alice")); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected username conflict, got %v", err)
	}

	reg := registration("bob")
	reg.Email = "ALICE@example.com"
	if _, _, err := f.service.Register(ctx, reg); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected email conflict, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	f := newAuthFixture()
	reg := app.Registration{Username: "", Email: "not-an-email", Password: "short"}

	_, _, err := f.service.Register(context.Background(), reg)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"username", "email", "password"} {
		if _, ok := ve.Fields[field]; !ok {
			t.Fatalf("expected error on %q, got %v", field, ve.Fields)
		}
	}
}

func TestPasswordByteLimit(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()

	reg := registration("alice")
	// 36 two-byte runes: 72 bytes, accepted.
	reg.Password = strings.Repeat("é", 36)
	alice, _, err := f.service.Register(ctx, reg)
	if err != nil {
		t.Fatalf("register at the limit: %v", err)
	}

	reg = registration("bob")
	// 40 characters but 80 bytes.
	reg.Password = strings.Repeat("é", 40)
	_, _, err = f.service.Register(ctx, reg)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Fields["password"] == "" {
		t.Fatalf("expected password validation error, got %v", err)
	}

	err = f.service.ChangePassword(ctx, alice.ID, app.PasswordChange{
		OldPassword: strings.Repeat("é", 36),
		NewPassword: strings.Repeat("x", 73),
	})
	if !errors.As(err, &ve) || ve.Fields["new_password"] == "" {
		t.Fatalf("expected new_password validation error, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	user, _, err := f.service.Register(ctx, registration("alice"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := f.service.Login(ctx, app.Credentials{Username: "alice", Password: "wrong-pass"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, _, err := f.service.Login(ctx, app.Credentials{Username: "nobody", Password: "s3cret-pass"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown users must look like bad credentials, got %v", err)
	}

	loggedIn, tokens, err := f.service.Login(ctx, app.Credentials{Username: "alice", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.LastLogin == nil || tokens.AccessToken == "" {
		t.Fatalf("expected last login and tokens, got %+v %+v", loggedIn, tokens)
	}
	stored, _ := f.users.GetByID(ctx, user.ID)
	if stored.LastLogin == nil {
		t.Fatalf("expected last login persisted")
	}

	stored.IsActive = false
	if err := f.users.Update(ctx, stored); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, _, err := f.service.Login(ctx, app.Credentials{Username: "alice", Password: "s3cret-pass"}); !errors.Is(err, domain.ErrUserInactive) {
		t.Fatalf("expected inactive error, got %v", err)
	}
	if _, err := f.service.Authenticate(ctx, tokens.AccessToken); !errors.Is(err, domain.ErrUserInactive) {
		t.Fatalf("tokens of a disabled user must stop working, got %v", err)
	}
}

func TestRefreshAndLogout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	user, tokens, err := f.service.Register(ctx, registration("alice"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	access, err := f.service.Refresh(ctx, tokens.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if _, err := f.service.Authenticate(ctx, access); err != nil {
		t.Fatalf("refreshed access token rejected: %v", err)
	}

	if _, err := f.service.Refresh(ctx, tokens.AccessToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("access token must not refresh, got %v", err)
	}

	other, _, err := f.service.Register(ctx, registration("bob"))
	if err != nil {
		t.Fatalf("register bob: %v", err)
	}
	if err := f.service.Logout(ctx, other, tokens.RefreshToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected foreign token to be rejected, got %v", err)
	}

	if err := f.service.Logout(ctx, user, tokens.RefreshToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := f.service.Refresh(ctx, tokens.RefreshToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("revoked refresh token must fail, got %v", err)
	}
}

func TestRefreshRequiresToken(t *testing.T) {
	f := newAuthFixture()

	_, err := f.service.Refresh(context.Background(), "")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Fields["refresh"] == "" {
		t.Fatalf("expected validation error on refresh, got %v", err)
	}
}

func TestAuthenticateRejectsExpiredAndRefreshTokens(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	_, tokens, err := f.service.Register(ctx, registration("alice"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := f.service.Authenticate(ctx, tokens.RefreshToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("refresh token must not authenticate, got %v", err)
	}

	f.now = f.now.Add(31 * time.Minute)
	if _, err := f.service.Authenticate(ctx, tokens.AccessToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected expired access token, got %v", err)
	}
	if _, err := f.service.Refresh(ctx, tokens.RefreshToken); err != nil {
		t.Fatalf("refresh token should outlive the access token: %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	alice, _, _ := f.service.Register(ctx, registration("alice"))
	if _, _, err := f.service.Register(ctx, registration("bob")); err != nil {
		t.Fatalf("register bob: %v", err)
	}

	last := "Liddell"
	email := "  Alice.New@Example.com "
	updated, err := f.service.UpdateProfile(ctx, alice.ID, app.ProfilePatch{LastName: &last, Email: &email})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.LastName != "Liddell" || updated.FirstName != "Test" || updated.Email != "alice.new@example.com" {
		t.Fatalf("unexpected profile %+v", updated)
	}

	taken := "bob@example.com"
	if _, err := f.service.UpdateProfile(ctx, alice.ID, app.ProfilePatch{Email: &taken}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected email conflict, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	alice, _, _ := f.service.Register(ctx, registration("alice"))

	err := f.service.ChangePassword(ctx, alice.ID, app.PasswordChange{OldPassword: "nope-nope", NewPassword: "brand-new-pass"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Fields["old_password"] == "" {
		t.Fatalf("expected old_password validation error, got %v", err)
	}

	if err := f.service.ChangePassword(ctx, alice.ID, app.PasswordChange{OldPassword: "s3cret-pass", NewPassword: "brand-new-pass"}); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, _, err := f.service.Login(ctx, app.Credentials{Username: "alice", Password: "s3cret-pass"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password must stop working, got %v", err)
	}
	if _, _, err := f.service.Login(ctx, app.Credentials{Username: "alice", Password: "brand-new-pass"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestCreateStaffUser(t *testing.T) {
	f := newAuthFixture()

	user, err := f.service.CreateUser(context.Background(), registration("admin"), true)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if !user.IsStaff {
		t.Fatalf("expected staff user")
	}
}
