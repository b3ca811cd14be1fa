package app

import (
	"context"
	"time"

	"quiz-backend/internal/domain"
)

// QuestionRepository reads the question catalog.
type QuestionRepository interface {
	// ListActive returns active questions ordered by ID, each with its choices ordered by ID.
	ListActive(ctx context.Context) ([]domain.Question, error)
}

// ConfigRepository stores the singleton quiz configuration.
type ConfigRepository interface {
	// GetOrCreate returns the config row, inserting defaults first if it does not exist.
	GetOrCreate(ctx context.Context, defaults domain.QuizConfig) (domain.QuizConfig, error)
	// Save overwrites the mutable fields and bumps UpdatedAt.
	Save(ctx context.Context, cfg domain.QuizConfig) (domain.QuizConfig, error)
}

// AttemptRepository stores immutable quiz attempts.
type AttemptRepository interface {
	// Create inserts the attempt and assigns its ID.
	Create(ctx context.Context, attempt *domain.QuizAttempt) error
	// List returns every attempt, newest first.
	List(ctx context.Context) ([]domain.QuizAttempt, error)
}

// UserRepository stores accounts for the identity endpoints.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	Update(ctx context.Context, user domain.User) error
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}

// TokenRevoker remembers revoked refresh tokens until they would have expired anyway.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AttemptFeed fans newly recorded attempts out to live subscribers.
type AttemptFeed interface {
	Publish(ctx context.Context, event domain.AttemptEvent) error
	// Subscribe returns a channel of events. The caller must invoke cancel to avoid leaks.
	Subscribe(ctx context.Context) (<-chan domain.AttemptEvent, func(), error)
}
