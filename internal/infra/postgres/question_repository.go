package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"quiz-backend/internal/domain"
)

// QuestionRepository reads the catalog from Postgres.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

func (r *QuestionRepository) ListActive(ctx context.Context) ([]domain.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, text, category, difficulty, points, is_active, created_at
		FROM questions
		WHERE is_active
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var (
		questions []domain.Question
		ids       []int64
		index     = map[int64]int{}
	)
	for rows.Next() {
		var q domain.Question
		var difficulty string
		if err := rows.Scan(&q.ID, &q.Text, &q.Category, &difficulty, &q.Points, &q.IsActive, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.Difficulty = domain.Difficulty(difficulty)
		q.Choices = []domain.Choice{}
		index[q.ID] = len(questions)
		ids = append(ids, q.ID)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Question{}, nil
	}

	choiceRows, err := r.pool.Query(ctx, `
		SELECT id, question_id, text, is_correct
		FROM choices
		WHERE question_id = ANY($1)
		ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("query choices: %w", err)
	}
	defer choiceRows.Close()

	for choiceRows.Next() {
		var c domain.Choice
		if err := choiceRows.Scan(&c.ID, &c.QuestionID, &c.Text, &c.IsCorrect); err != nil {
			return nil, fmt.Errorf("scan choice: %w", err)
		}
		i := index[c.QuestionID]
		questions[i].Choices = append(questions[i].Choices, c)
	}
	if err := choiceRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate choices: %w", err)
	}
	return questions, nil
}
