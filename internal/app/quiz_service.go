package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"quiz-backend/internal/domain"
)

// Submission is a client's answer set for the active quiz.
type Submission struct {
	Answers   domain.AnswerSheet `json:"answers"`
	TimeTaken int                `json:"time_taken" validate:"gte=0,lte=2147483647"`
	SessionID string             `json:"session_id" validate:"required,max=100"`
	Username  string             `json:"username" validate:"max=150"`
}

// QuizService serves the catalog and grades submissions.
type QuizService struct {
	questions QuestionRepository
	configs   ConfigRepository
	attempts  AttemptRepository
	feed      AttemptFeed
	now       func() time.Time
	sf        singleflight.Group
}

// NewQuizService wires the quiz use cases. feed may be nil.
func NewQuizService(questions QuestionRepository, configs ConfigRepository, attempts AttemptRepository, feed AttemptFeed) *QuizService {
	return NewQuizServiceWithClock(questions, configs, attempts, feed, time.Now)
}

// NewQuizServiceWithClock is for deterministic timestamps in tests.
func NewQuizServiceWithClock(questions QuestionRepository, configs ConfigRepository, attempts AttemptRepository, feed AttemptFeed, now func() time.Time) *QuizService {
	return &QuizService{
		questions: questions,
		configs:   configs,
		attempts:  attempts,
		feed:      feed,
		now:       now,
	}
}

// ListActiveQuestions returns the active questions without correctness flags.
func (s *QuizService) ListActiveQuestions(ctx context.Context) ([]domain.PublicQuestion, error) {
	questions, err := s.questions.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active questions: %w", err)
	}
	out := make([]domain.PublicQuestion, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.Public())
	}
	return out, nil
}

// GetConfig returns the quiz config, creating the default row on first read.
func (s *QuizService) GetConfig(ctx context.Context) (domain.QuizConfig, error) {
	// Concurrent first reads share one insert attempt; the store's upsert covers other instances.
	// The shared call outlives any single caller's cancellation.
	shared := context.WithoutCancel(ctx)
	result, err, _ := s.sf.Do("config", func() (interface{}, error) {
		return s.configs.GetOrCreate(shared, domain.DefaultQuizConfig())
	})
	if err != nil {
		return domain.QuizConfig{}, fmt.Errorf("get quiz config: %w", err)
	}
	return result.(domain.QuizConfig), nil
}

// UpdateConfig applies the supplied fields. Callers must already be authorized as staff.
func (s *QuizService) UpdateConfig(ctx context.Context, patch domain.ConfigPatch) (domain.QuizConfig, error) {
	if err := validateStruct(patch, "invalid quiz configuration"); err != nil {
		return domain.QuizConfig{}, err
	}
	current, err := s.GetConfig(ctx)
	if err != nil {
		return domain.QuizConfig{}, err
	}
	updated, err := s.configs.Save(ctx, patch.Apply(current))
	if err != nil {
		return domain.QuizConfig{}, fmt.Errorf("save quiz config: %w", err)
	}
	return updated, nil
}

// Submit grades the submission against the questions active right now, records the attempt
// and returns the per-question breakdown. caller is nil for anonymous submissions.
func (s *QuizService) Submit(ctx context.Context, sub Submission, caller *domain.User) (domain.SubmissionResult, error) {
	sub.SessionID = strings.TrimSpace(sub.SessionID)
	sub.Username = strings.TrimSpace(sub.Username)
	if err := validateStruct(sub, "invalid submission"); err != nil {
		return domain.SubmissionResult{}, err
	}
	if sub.Answers == nil {
		sub.Answers = domain.AnswerSheet{}
	}

	questions, err := s.questions.ListActive(ctx)
	if err != nil {
		return domain.SubmissionResult{}, fmt.Errorf("load active questions: %w", err)
	}

	graded := gradeSubmission(questions, sub.Answers)

	attempt := domain.QuizAttempt{
		Username:       attributeUsername(sub.Username, caller),
		SessionID:      sub.SessionID,
		Score:          graded.score,
		TotalQuestions: len(graded.rows),
		Percentage:     graded.percentage(),
		TimeTaken:      sub.TimeTaken,
		CompletedAt:    s.now().UTC(),
		UserAnswers:    sub.Answers,
	}
	if caller != nil {
		id := caller.ID
		attempt.UserID = &id
		attempt.LinkedUsername = caller.Username
	}
	if err := s.attempts.Create(ctx, &attempt); err != nil {
		return domain.SubmissionResult{}, fmt.Errorf("record attempt: %w", err)
	}

	s.publish(ctx, attempt)

	return domain.SubmissionResult{
		AttemptID:      attempt.ID,
		Username:       attempt.Username,
		Score:          attempt.Score,
		TotalPoints:    graded.totalPoints,
		TotalQuestions: attempt.TotalQuestions,
		Percentage:     attempt.Percentage,
		TimeTaken:      attempt.TimeTaken,
		CompletedAt:    attempt.CompletedAt,
		Results:        graded.rows,
	}, nil
}

func (s *QuizService) publish(ctx context.Context, attempt domain.QuizAttempt) {
	if s.feed == nil {
		return
	}
	if err := s.feed.Publish(ctx, domain.EventFor(attempt)); err != nil {
		log.Printf("publish attempt %d: %v", attempt.ID, err)
	}
}

func attributeUsername(submitted string, caller *domain.User) string {
	if submitted != "" {
		return submitted
	}
	if caller != nil && caller.Username != "" {
		return caller.Username
	}
	return domain.AnonymousUsername
}

type gradedSubmission struct {
	rows        []domain.QuestionResult
	score       int
	totalPoints int
}

func (g gradedSubmission) percentage() float64 {
	if g.totalPoints <= 0 {
		return 0
	}
	return domain.Round2(float64(g.score) / float64(g.totalPoints) * 100)
}

// gradeSubmission walks every active question once. A bad row never aborts the rest:
// unknown or foreign choice IDs count as no answer, and a question without a correct
// choice still appears, earns nothing and counts toward the totals.
func gradeSubmission(questions []domain.Question, answers domain.AnswerSheet) gradedSubmission {
	graded := gradedSubmission{rows: make([]domain.QuestionResult, 0, len(questions))}
	for _, q := range questions {
		graded.totalPoints += q.Points

		row := domain.QuestionResult{
			QuestionID:     q.ID,
			QuestionText:   q.Text,
			UserAnswerText: domain.NoAnswerText,
			Points:         q.Points,
		}

		var selected *domain.Choice
		if choiceID, ok := answers.ChoiceFor(q.Key()); ok {
			// Lookup is scoped to this question so another question's choice ID never matches.
			if c, ok := q.Choice(choiceID); ok {
				selected = &c
				row.UserAnswerID = &c.ID
				row.UserAnswerText = c.Text
			}
		}

		correct, ok := q.CorrectChoice()
		if !ok {
			row.CorrectAnswerText = domain.MissingAnswerText
			graded.rows = append(graded.rows, row)
			continue
		}
		row.CorrectAnswerID = &correct.ID
		row.CorrectAnswerText = correct.Text

		if selected != nil && selected.ID == correct.ID {
			row.IsCorrect = true
			row.PointsEarned = q.Points
			graded.score += q.Points
		}
		graded.rows = append(graded.rows, row)
	}
	return graded
}
