package seed

import (
	"math/rand"
	"strconv"
	"time"

	"quiz-backend/internal/domain"
)

// DefaultConfig is the config the seed command stores: a longer timer and three attempts.
func DefaultConfig() domain.QuizConfig {
	cfg := domain.DefaultQuizConfig()
	cfg.TimerDuration = 15
	cfg.MaxAttempts = 3
	return cfg
}

var mockPlayers = []struct{ session, username string }{
	{"user_001", "john_doe"},
	{"user_002", "jane_smith"},
	{"user_003", "mike_wilson"},
	{"user_004", "sarah_jones"},
	{"user_005", "alex_brown"},
	{"test_user_1", "test_user_1"},
	{"test_user_2", "test_user_2"},
	{"demo_user", "demo_user"},
	{"guest_001", "Guest User 1"},
	{"guest_002", "Guest User 2"},
}

// MockAttempts fabricates n graded attempts against questions, which must already carry IDs.
// Players cycle through a fixed roster; the first two answer ~90% correctly, the next
// three ~70%, the rest ~40%. Attempts are spread over the 30 days before now.
func MockAttempts(questions []domain.Question, n int, rnd *rand.Rand, now time.Time) []domain.QuizAttempt {
	if len(questions) == 0 || n <= 0 {
		return nil
	}
	out := make([]domain.QuizAttempt, 0, n)
	for i := 0; i < n; i++ {
		slot := i % len(mockPlayers)
		player := mockPlayers[slot]
		accuracy := 0.4
		switch {
		case slot < 2:
			accuracy = 0.9
		case slot < 5:
			accuracy = 0.7
		}

		answers := domain.AnswerSheet{}
		score, total := 0, 0
		for _, q := range questions {
			total += q.Points
			if rnd.Float64() < accuracy {
				if c, ok := q.CorrectChoice(); ok {
					answers[q.Key()] = strconv.FormatInt(c.ID, 10)
					score += q.Points
				}
				continue
			}
			var incorrect []domain.Choice
			for _, c := range q.Choices {
				if !c.IsCorrect {
					incorrect = append(incorrect, c)
				}
			}
			if len(incorrect) > 0 {
				answers[q.Key()] = strconv.FormatInt(incorrect[rnd.Intn(len(incorrect))].ID, 10)
			}
		}

		pct := 0.0
		if total > 0 {
			pct = domain.Round2(float64(score) / float64(total) * 100)
		}
		out = append(out, domain.QuizAttempt{
			Username:       player.username,
			SessionID:      player.session,
			Score:          score,
			TotalQuestions: len(questions),
			Percentage:     pct,
			TimeTaken:      300 + rnd.Intn(601),
			CompletedAt:    now.Add(-time.Duration(rnd.Intn(31)) * 24 * time.Hour).UTC(),
			UserAnswers:    answers,
		})
	}
	return out
}
