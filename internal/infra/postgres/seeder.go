package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"github.com/uptrace/bun"

	"quiz-backend/internal/domain"
	"quiz-backend/internal/seed"
)

type questionModel struct {
	bun.BaseModel `bun:"table:questions"`

	ID         int64     `bun:"id,pk,autoincrement"`
	Text       string    `bun:"text,notnull"`
	Category   string    `bun:"category,notnull"`
	Difficulty string    `bun:"difficulty,notnull"`
	Points     int       `bun:"points,notnull"`
	IsActive   bool      `bun:"is_active,notnull"`
	CreatedAt  time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

type choiceModel struct {
	bun.BaseModel `bun:"table:choices"`

	ID         int64  `bun:"id,pk,autoincrement"`
	QuestionID int64  `bun:"question_id,notnull"`
	Text       string `bun:"text,notnull"`
	IsCorrect  bool   `bun:"is_correct,notnull"`
}

type configModel struct {
	bun.BaseModel `bun:"table:quiz_config"`

	ID                     int64     `bun:"id,pk"`
	TimerDuration          int       `bun:"timer_duration,notnull"`
	IsActive               bool      `bun:"is_active,notnull"`
	MaxAttempts            int       `bun:"max_attempts,notnull"`
	ShowResultsImmediately bool      `bun:"show_results_immediately,notnull"`
	CreatedAt              time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt              time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

type attemptModel struct {
	bun.BaseModel `bun:"table:quiz_attempts"`

	ID             int64              `bun:"id,pk,autoincrement"`
	UserID         *int64             `bun:"user_id"`
	Username       string             `bun:"username,notnull"`
	SessionID      string             `bun:"user_session,notnull"`
	Score          int                `bun:"score,notnull"`
	TotalQuestions int                `bun:"total_questions,notnull"`
	Percentage     float64            `bun:"percentage,notnull"`
	TimeTaken      int                `bun:"time_taken,notnull"`
	CompletedAt    time.Time          `bun:"completed_at,notnull"`
	UserAnswers    domain.AnswerSheet `bun:"user_answers,type:jsonb,notnull"`
}

// SeedOptions controls what the seeder writes.
type SeedOptions struct {
	Clear    bool
	Attempts int
	Rand     *rand.Rand
	Now      time.Time
}

// SeedReport summarizes a seeding run.
type SeedReport struct {
	ConfigCreated    bool
	QuestionsCreated int
	QuestionsSkipped int
	AttemptsCreated  int
}

// Seeder loads the sample catalog through bun.
type Seeder struct {
	db *bun.DB
}

func NewSeeder(db *bun.DB) *Seeder {
	return &Seeder{db: db}
}

// Seed writes the default config, the sample questions (skipping texts that already
// exist) and optionally mock attempts, all in one transaction.
func (s *Seeder) Seed(ctx context.Context, opts SeedOptions) (SeedReport, error) {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	var report SeedReport
	err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if opts.Clear {
			if err := clearTables(ctx, tx); err != nil {
				return err
			}
		}

		created, err := seedConfig(ctx, tx)
		if err != nil {
			return err
		}
		report.ConfigCreated = created

		for _, q := range seed.Questions() {
			inserted, err := seedQuestion(ctx, tx, q)
			if err != nil {
				return err
			}
			if inserted {
				report.QuestionsCreated++
			} else {
				report.QuestionsSkipped++
			}
		}

		if opts.Attempts > 0 {
			n, err := seedAttempts(ctx, tx, opts)
			if err != nil {
				return err
			}
			report.AttemptsCreated = n
		}
		return nil
	})
	return report, err
}

func clearTables(ctx context.Context, tx bun.Tx) error {
	for _, model := range []any{(*attemptModel)(nil), (*choiceModel)(nil), (*questionModel)(nil), (*configModel)(nil)} {
		if _, err := tx.NewDelete().Model(model).Where("TRUE").Exec(ctx); err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

func seedConfig(ctx context.Context, tx bun.Tx) (bool, error) {
	cfg := seed.DefaultConfig()
	row := &configModel{
		ID:                     domain.QuizConfigID,
		TimerDuration:          cfg.TimerDuration,
		IsActive:               cfg.IsActive,
		MaxAttempts:            cfg.MaxAttempts,
		ShowResultsImmediately: cfg.ShowResultsImmediately,
	}
	res, err := tx.NewInsert().Model(row).On("CONFLICT (id) DO NOTHING").Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("insert config: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func seedQuestion(ctx context.Context, tx bun.Tx, q domain.Question) (bool, error) {
	exists, err := tx.NewSelect().Model((*questionModel)(nil)).Where("text = ?", q.Text).Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("check question %q: %w", q.Text, err)
	}
	if exists {
		return false, nil
	}

	row := &questionModel{
		Text:       q.Text,
		Category:   q.Category,
		Difficulty: string(q.Difficulty),
		Points:     q.Points,
		IsActive:   q.IsActive,
	}
	if _, err := tx.NewInsert().Model(row).Returning("id").Exec(ctx); err != nil {
		return false, fmt.Errorf("insert question %q: %w", q.Text, err)
	}

	choices := make([]choiceModel, 0, len(q.Choices))
	for _, c := range q.Choices {
		choices = append(choices, choiceModel{QuestionID: row.ID, Text: c.Text, IsCorrect: c.IsCorrect})
	}
	if len(choices) > 0 {
		if _, err := tx.NewInsert().Model(&choices).Exec(ctx); err != nil {
			return false, fmt.Errorf("insert choices for %q: %w", q.Text, err)
		}
	}
	return true, nil
}

func seedAttempts(ctx context.Context, tx bun.Tx, opts SeedOptions) (int, error) {
	var questionRows []questionModel
	if err := tx.NewSelect().Model(&questionRows).Where("is_active").Order("id").Scan(ctx); err != nil {
		return 0, fmt.Errorf("load questions: %w", err)
	}
	if len(questionRows) == 0 {
		return 0, nil
	}
	ids := make([]int64, len(questionRows))
	for i, q := range questionRows {
		ids[i] = q.ID
	}
	var choiceRows []choiceModel
	if err := tx.NewSelect().Model(&choiceRows).Where("question_id IN (?)", bun.In(ids)).Order("id").Scan(ctx); err != nil {
		return 0, fmt.Errorf("load choices: %w", err)
	}

	byQuestion := map[int64][]domain.Choice{}
	for _, c := range choiceRows {
		byQuestion[c.QuestionID] = append(byQuestion[c.QuestionID], domain.Choice{
			ID: c.ID, QuestionID: c.QuestionID, Text: c.Text, IsCorrect: c.IsCorrect,
		})
	}
	questions := make([]domain.Question, len(questionRows))
	for i, q := range questionRows {
		questions[i] = domain.Question{
			ID:         q.ID,
			Text:       q.Text,
			Category:   q.Category,
			Difficulty: domain.Difficulty(q.Difficulty),
			Points:     q.Points,
			IsActive:   q.IsActive,
			Choices:    byQuestion[q.ID],
		}
	}

	mock := seed.MockAttempts(questions, opts.Attempts, opts.Rand, opts.Now)
	rows := make([]attemptModel, len(mock))
	for i, a := range mock {
		rows[i] = attemptModel{
			Username:       a.Username,
			SessionID:      a.SessionID,
			Score:          a.Score,
			TotalQuestions: a.TotalQuestions,
			Percentage:     a.Percentage,
			TimeTaken:      a.TimeTaken,
			CompletedAt:    a.CompletedAt,
			UserAnswers:    a.UserAnswers,
		}
	}
	if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return 0, fmt.Errorf("insert attempts: %w", err)
	}
	return len(rows), nil
}
