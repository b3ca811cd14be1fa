package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"quiz-backend/internal/domain"
)

// ConfigRepository stores the singleton config row under domain.QuizConfigID.
type ConfigRepository struct {
	pool *pgxpool.Pool
}

func NewConfigRepository(pool *pgxpool.Pool) *ConfigRepository {
	return &ConfigRepository{pool: pool}
}

const selectConfig = `
	SELECT id, timer_duration, is_active, max_attempts, show_results_immediately, created_at, updated_at
	FROM quiz_config
	WHERE id = $1`

// GetOrCreate inserts defaults when the row is missing; a concurrent insert from another
// instance is absorbed by ON CONFLICT and both callers read the same row back.
func (r *ConfigRepository) GetOrCreate(ctx context.Context, defaults domain.QuizConfig) (domain.QuizConfig, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO quiz_config (id, timer_duration, is_active, max_attempts, show_results_immediately)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING`,
		domain.QuizConfigID, defaults.TimerDuration, defaults.IsActive, defaults.MaxAttempts, defaults.ShowResultsImmediately)
	if err != nil {
		return domain.QuizConfig{}, fmt.Errorf("insert default config: %w", err)
	}
	return r.get(ctx)
}

func (r *ConfigRepository) get(ctx context.Context) (domain.QuizConfig, error) {
	var cfg domain.QuizConfig
	err := r.pool.QueryRow(ctx, selectConfig, domain.QuizConfigID).Scan(
		&cfg.ID, &cfg.TimerDuration, &cfg.IsActive, &cfg.MaxAttempts,
		&cfg.ShowResultsImmediately, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.QuizConfig{}, domain.ErrConfigNotFound
	}
	if err != nil {
		return domain.QuizConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (r *ConfigRepository) Save(ctx context.Context, cfg domain.QuizConfig) (domain.QuizConfig, error) {
	var out domain.QuizConfig
	err := r.pool.QueryRow(ctx, `
		UPDATE quiz_config
		SET timer_duration = $2, is_active = $3, max_attempts = $4,
			show_results_immediately = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, timer_duration, is_active, max_attempts, show_results_immediately, created_at, updated_at`,
		domain.QuizConfigID, cfg.TimerDuration, cfg.IsActive, cfg.MaxAttempts, cfg.ShowResultsImmediately,
	).Scan(&out.ID, &out.TimerDuration, &out.IsActive, &out.MaxAttempts,
		&out.ShowResultsImmediately, &out.CreatedAt, &out.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.QuizConfig{}, domain.ErrConfigNotFound
	}
	if err != nil {
		return domain.QuizConfig{}, fmt.Errorf("update config: %w", err)
	}
	return out, nil
}
