package memory

import (
	"context"
	"sort"
	"sync"

	"quiz-backend/internal/domain"
)

// AttemptStore is an append-only in-memory attempt log.
type AttemptStore struct {
	mu       sync.RWMutex
	attempts []domain.QuizAttempt
	nextID   int64
	users    *UserStore
}

// NewAttemptStore creates the store. users is optional and only used to fill LinkedUsername.
func NewAttemptStore(users *UserStore) *AttemptStore {
	return &AttemptStore{users: users}
}

func (s *AttemptStore) Create(_ context.Context, attempt *domain.QuizAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	attempt.ID = s.nextID
	stored := *attempt
	stored.UserAnswers = copyAnswers(attempt.UserAnswers)
	s.attempts = append(s.attempts, stored)
	return nil
}

func (s *AttemptStore) List(_ context.Context) ([]domain.QuizAttempt, error) {
	s.mu.RLock()
	out := make([]domain.QuizAttempt, len(s.attempts))
	for i, a := range s.attempts {
		a.UserAnswers = copyAnswers(a.UserAnswers)
		out[i] = a
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CompletedAt.Equal(out[j].CompletedAt) {
			return out[i].CompletedAt.After(out[j].CompletedAt)
		}
		return out[i].ID > out[j].ID
	})
	for i := range out {
		out[i].LinkedUsername = ""
		if out[i].UserID != nil && s.users != nil {
			if u, err := s.users.GetByID(context.Background(), *out[i].UserID); err == nil {
				out[i].LinkedUsername = u.Username
			}
		}
	}
	return out, nil
}

func copyAnswers(in domain.AnswerSheet) domain.AnswerSheet {
	out := make(domain.AnswerSheet, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
