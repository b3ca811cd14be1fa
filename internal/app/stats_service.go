package app

import (
	"context"
	"fmt"

	"quiz-backend/internal/domain"
)

// StatsService aggregates recorded attempts for staff dashboards.
type StatsService struct {
	questions QuestionRepository
	attempts  AttemptRepository
}

func NewStatsService(questions QuestionRepository, attempts AttemptRepository) *StatsService {
	return &StatsService{questions: questions, attempts: attempts}
}

// ListAttempts returns every attempt, newest first.
func (s *StatsService) ListAttempts(ctx context.Context) ([]domain.QuizAttempt, error) {
	attempts, err := s.attempts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	return attempts, nil
}

// AttemptSummary computes averages and the score-band distribution. With no attempts
// every figure is zero.
func (s *StatsService) AttemptSummary(ctx context.Context) (domain.AttemptSummary, error) {
	attempts, err := s.attempts.List(ctx)
	if err != nil {
		return domain.AttemptSummary{}, fmt.Errorf("list attempts: %w", err)
	}
	questions, err := s.questions.ListActive(ctx)
	if err != nil {
		return domain.AttemptSummary{}, fmt.Errorf("list active questions: %w", err)
	}

	summary := domain.AttemptSummary{
		TotalAttempts:        len(attempts),
		TotalActiveQuestions: len(questions),
	}
	if len(attempts) == 0 {
		return summary, nil
	}

	var pctSum float64
	var timeSum int64
	for _, a := range attempts {
		pctSum += a.Percentage
		timeSum += int64(a.TimeTaken)
		summary.ScoreDistribution.Add(a.Percentage)
	}
	n := float64(len(attempts))
	summary.AverageScore = domain.Round2(pctSum / n)
	summary.AverageTimeTaken = domain.Round2(float64(timeSum) / n)
	return summary, nil
}

// PerQuestionAccuracy reports correctness for every active question.
//
// The denominator is the global attempt count: an attempt recorded before a question
// existed still counts as a miss for it. AnsweredAttempts is reported alongside so a
// caller can derive an exposure-based rate.
func (s *StatsService) PerQuestionAccuracy(ctx context.Context) ([]domain.QuestionAccuracy, error) {
	questions, err := s.questions.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active questions: %w", err)
	}
	attempts, err := s.attempts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}

	total := len(attempts)
	out := make([]domain.QuestionAccuracy, 0, len(questions))
	for _, q := range questions {
		row := domain.QuestionAccuracy{
			QuestionID:    q.ID,
			QuestionText:  q.Text,
			Difficulty:    q.Difficulty,
			TotalAttempts: total,
		}
		key := q.Key()
		correct, hasCorrect := q.CorrectChoice()
		for _, a := range attempts {
			if _, answered := a.UserAnswers[key]; answered {
				row.AnsweredAttempts++
			}
			if !hasCorrect {
				continue
			}
			if id, ok := a.UserAnswers.ChoiceFor(key); ok && id == correct.ID {
				row.CorrectAttempts++
			}
		}
		if total > 0 {
			row.Accuracy = domain.Round2(float64(row.CorrectAttempts) / float64(total) * 100)
		}
		out = append(out, row)
	}
	return out, nil
}
