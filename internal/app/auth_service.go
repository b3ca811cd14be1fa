package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quiz-backend/internal/auth"
	"quiz-backend/internal/domain"
)

// Registration is the sign-up payload.
type Registration struct {
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required,min=8,password_bytes"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
}

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ProfilePatch lists the profile fields a user may change about themselves.
type ProfilePatch struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name" validate:"omitempty,max=150"`
	Email     *string `json:"email" validate:"omitempty,email,max=254"`
}

// PasswordChange is the change-password payload.
type PasswordChange struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,password_bytes"`
}

// AuthService is the identity provider: accounts plus access/refresh tokens.
type AuthService struct {
	users   UserRepository
	revoker TokenRevoker
	tokens  *auth.Issuer
	now     func() time.Time
}

func NewAuthService(users UserRepository, revoker TokenRevoker, tokens *auth.Issuer) *AuthService {
	return &AuthService{users: users, revoker: revoker, tokens: tokens, now: time.Now}
}

// CreateUser stores a new account without issuing tokens.
func (s *AuthService) CreateUser(ctx context.Context, reg Registration, staff bool) (domain.User, error) {
	reg.Username = strings.TrimSpace(reg.Username)
	reg.Email = normalizeEmail(reg.Email)
	if err := validateStruct(reg, "invalid registration"); err != nil {
		return domain.User{}, err
	}
	hash, err := auth.HashPassword(reg.Password)
	if err != nil {
		return domain.User{}, err
	}
	user := domain.User{
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(reg.FirstName),
		LastName:     strings.TrimSpace(reg.LastName),
		IsStaff:      staff,
		IsActive:     true,
		DateJoined:   s.now().UTC(),
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Register creates a regular account and signs the user in.
func (s *AuthService) Register(ctx context.Context, reg Registration) (domain.User, auth.TokenPair, error) {
	user, err := s.CreateUser(ctx, reg, false)
	if err != nil {
		return domain.User{}, auth.TokenPair{}, err
	}
	tokens, err := s.tokens.GeneratePair(user)
	if err != nil {
		return domain.User{}, auth.TokenPair{}, err
	}
	return user, tokens, nil
}

// Login checks credentials and issues a token pair.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (domain.User, auth.TokenPair, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if err := validateStruct(creds, "username and password are required"); err != nil {
		return domain.User{}, auth.TokenPair{}, err
	}
	user, err := s.users.GetByUsername(ctx, creds.Username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, auth.TokenPair{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, auth.TokenPair{}, fmt.Errorf("load user: %w", err)
	}
	ok, err := auth.CheckPassword(user.PasswordHash, creds.Password)
	if err != nil {
		return domain.User{}, auth.TokenPair{}, err
	}
	if !ok {
		return domain.User{}, auth.TokenPair{}, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return domain.User{}, auth.TokenPair{}, domain.ErrUserInactive
	}

	now := s.now().UTC()
	if err := s.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		return domain.User{}, auth.TokenPair{}, fmt.Errorf("update last login: %w", err)
	}
	user.LastLogin = &now

	tokens, err := s.tokens.GeneratePair(user)
	if err != nil {
		return domain.User{}, auth.TokenPair{}, err
	}
	return user, tokens, nil
}

// Refresh exchanges a live refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.checkRefresh(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	user, err := s.activeUser(ctx, claims.UserID)
	if err != nil {
		return "", err
	}
	return s.tokens.GenerateAccess(user)
}

// Logout revokes the caller's refresh token.
func (s *AuthService) Logout(ctx context.Context, caller domain.User, refreshToken string) error {
	claims, err := s.checkRefresh(ctx, refreshToken)
	if err != nil {
		return err
	}
	if claims.UserID != caller.ID {
		return fmt.Errorf("%w: token belongs to another user", domain.ErrInvalidToken)
	}
	if err := s.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

func (s *AuthService) checkRefresh(ctx context.Context, refreshToken string) (*auth.Claims, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, domain.NewValidationError("refresh token is required").Add("refresh", "this field is required")
	}
	claims, err := s.tokens.Parse(refreshToken, auth.TokenRefresh)
	if err != nil {
		return nil, err
	}
	revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("%w: token revoked", domain.ErrInvalidToken)
	}
	return claims, nil
}

// Authenticate resolves an access token to its active user.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (domain.User, error) {
	claims, err := s.tokens.Parse(accessToken, auth.TokenAccess)
	if err != nil {
		return domain.User{}, err
	}
	return s.activeUser(ctx, claims.UserID)
}

func (s *AuthService) activeUser(ctx context.Context, id int64) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, fmt.Errorf("%w: unknown user", domain.ErrInvalidToken)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("load user: %w", err)
	}
	if !user.IsActive {
		return domain.User{}, domain.ErrUserInactive
	}
	return user, nil
}

// UpdateProfile applies the supplied profile fields.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, patch ProfilePatch) (domain.User, error) {
	if patch.Email != nil {
		email := normalizeEmail(*patch.Email)
		patch.Email = &email
	}
	if err := validateStruct(patch, "invalid profile"); err != nil {
		return domain.User{}, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("load user: %w", err)
	}
	if patch.FirstName != nil {
		user.FirstName = strings.TrimSpace(*patch.FirstName)
	}
	if patch.LastName != nil {
		user.LastName = strings.TrimSpace(*patch.LastName)
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if err := s.users.Update(ctx, user); err != nil {
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// ChangePassword replaces the password after checking the old one.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, change PasswordChange) error {
	if err := validateStruct(change, "invalid password change"); err != nil {
		return err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	ok, err := auth.CheckPassword(user.PasswordHash, change.OldPassword)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NewValidationError("invalid old password").Add("old_password", "does not match the current password")
	}
	hash, err := auth.HashPassword(change.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
