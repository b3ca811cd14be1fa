package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"quiz-backend/internal/domain"
)

// AttemptRepository is an insert-only attempt log; user_answers is stored as JSONB.
type AttemptRepository struct {
	pool *pgxpool.Pool
}

func NewAttemptRepository(pool *pgxpool.Pool) *AttemptRepository {
	return &AttemptRepository{pool: pool}
}

func (r *AttemptRepository) Create(ctx context.Context, attempt *domain.QuizAttempt) error {
	answers := attempt.UserAnswers
	if answers == nil {
		answers = domain.AnswerSheet{}
	}
	raw, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	err = r.pool.QueryRow(ctx, `
		INSERT INTO quiz_attempts
			(user_id, username, user_session, score, total_questions, percentage, time_taken, completed_at, user_answers)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb)
		RETURNING id`,
		attempt.UserID, attempt.Username, attempt.SessionID, attempt.Score, attempt.TotalQuestions,
		attempt.Percentage, attempt.TimeTaken, attempt.CompletedAt, string(raw),
	).Scan(&attempt.ID)
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

func (r *AttemptRepository) List(ctx context.Context) ([]domain.QuizAttempt, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.user_id, a.username, a.user_session, a.score, a.total_questions,
			a.percentage, a.time_taken, a.completed_at, a.user_answers, COALESCE(u.username, '')
		FROM quiz_attempts a
		LEFT JOIN users u ON u.id = a.user_id
		ORDER BY a.completed_at DESC, a.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	attempts := []domain.QuizAttempt{}
	for rows.Next() {
		var (
			a   domain.QuizAttempt
			raw []byte
		)
		if err := rows.Scan(&a.ID, &a.UserID, &a.Username, &a.SessionID, &a.Score, &a.TotalQuestions,
			&a.Percentage, &a.TimeTaken, &a.CompletedAt, &raw, &a.LinkedUsername); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		if err := json.Unmarshal(raw, &a.UserAnswers); err != nil {
			return nil, fmt.Errorf("unmarshal answers of attempt %d: %w", a.ID, err)
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return attempts, nil
}
