package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"quiz-backend/internal/domain"
)

// QuestionStore is an in-memory question catalog (useful for tests/demos).
type QuestionStore struct {
	mu        sync.RWMutex
	questions map[int64]domain.Question
	nextQID   int64
	nextCID   int64
}

// NewQuestionStore copies the given questions, assigning IDs where they are zero.
func NewQuestionStore(questions []domain.Question) *QuestionStore {
	s := &QuestionStore{questions: make(map[int64]domain.Question)}
	for _, q := range questions {
		s.add(q)
	}
	return s
}

// Add inserts a question with its choices and returns the stored copy.
func (s *QuestionStore) Add(q domain.Question) domain.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(q)
}

func (s *QuestionStore) add(q domain.Question) domain.Question {
	if q.ID == 0 {
		s.nextQID++
		q.ID = s.nextQID
	} else if q.ID > s.nextQID {
		s.nextQID = q.ID
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}
	choices := make([]domain.Choice, len(q.Choices))
	for i, c := range q.Choices {
		if c.ID == 0 {
			s.nextCID++
			c.ID = s.nextCID
		} else if c.ID > s.nextCID {
			s.nextCID = c.ID
		}
		c.QuestionID = q.ID
		choices[i] = c
	}
	q.Choices = choices
	s.questions[q.ID] = q
	return cloneQuestion(q)
}

// SetActive toggles a question's active flag.
func (s *QuestionStore) SetActive(id int64, active bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questions[id]
	if !ok {
		return false
	}
	q.IsActive = active
	s.questions[id] = q
	return true
}

func (s *QuestionStore) ListActive(_ context.Context) ([]domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Question, 0, len(s.questions))
	for _, q := range s.questions {
		if q.IsActive {
			out = append(out, cloneQuestion(q))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func cloneQuestion(q domain.Question) domain.Question {
	choices := make([]domain.Choice, len(q.Choices))
	copy(choices, q.Choices)
	sort.Slice(choices, func(i, j int) bool { return choices[i].ID < choices[j].ID })
	q.Choices = choices
	return q
}
