package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"quiz-backend/internal/domain"
)

// UserStore is an in-memory implementation of app.UserRepository.
type UserStore struct {
	mu     sync.RWMutex
	users  map[int64]domain.User
	nextID int64
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[int64]domain.User)}
}

func (s *UserStore) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailTaken
		}
	}
	s.nextID++
	user.ID = s.nextID
	s.users[user.ID] = *user
	return nil
}

func (s *UserStore) GetByID(_ context.Context, id int64) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *UserStore) GetByUsername(_ context.Context, username string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (s *UserStore) Update(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	for id, u := range s.users {
		if id != user.ID && strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailTaken
		}
	}
	s.users[user.ID] = user
	return nil
}

func (s *UserStore) TouchLastLogin(_ context.Context, id int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastLogin = &at
	s.users[id] = u
	return nil
}
