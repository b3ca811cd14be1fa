package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"quiz-backend/internal/domain"
)

func TestUserStoreUniqueness(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()
	alice := domain.User{Username: "alice", Email: "alice@example.com"}
	if err := store.Create(ctx, &alice); err != nil {
		t.Fatalf("create: %v", err)
	}

	dupName := domain.User{Username: "alice", Email: "other@example.com"}
	if err := store.Create(ctx, &dupName); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected username conflict, got %v", err)
	}
	dupEmail := domain.User{Username: "bob", Email: "ALICE@example.com"}
	if err := store.Create(ctx, &dupEmail); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected email conflict, got %v", err)
	}

	bob := domain.User{Username: "bob", Email: "bob@example.com"}
	if err := store.Create(ctx, &bob); err != nil {
		t.Fatalf("create bob: %v", err)
	}
	bob.Email = "alice@example.com"
	if err := store.Update(ctx, bob); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected email conflict on update, got %v", err)
	}
}

func TestUserStoreLookups(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()
	alice := domain.User{Username: "alice", Email: "alice@example.com"}
	_ = store.Create(ctx, &alice)

	if _, err := store.GetByID(ctx, 99); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := store.GetByUsername(ctx, "nobody"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	at := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	if err := store.TouchLastLogin(ctx, alice.ID, at); err != nil {
		t.Fatalf("touch: %v", err)
	}
	got, err := store.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.LastLogin == nil || !got.LastLogin.Equal(at) {
		t.Fatalf("expected last login %v, got %v", at, got.LastLogin)
	}
}
