package memory

import (
	"context"
	"sync"
	"time"

	"quiz-backend/internal/domain"
)

// ConfigStore keeps the singleton quiz config in memory.
type ConfigStore struct {
	mu    sync.Mutex
	cfg   *domain.QuizConfig
	clock func() time.Time
}

func NewConfigStore() *ConfigStore {
	return &ConfigStore{clock: time.Now}
}

func (s *ConfigStore) GetOrCreate(_ context.Context, defaults domain.QuizConfig) (domain.QuizConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg == nil {
		now := s.clock().UTC()
		cfg := defaults
		cfg.ID = domain.QuizConfigID
		cfg.CreatedAt = now
		cfg.UpdatedAt = now
		s.cfg = &cfg
	}
	return *s.cfg, nil
}

func (s *ConfigStore) Save(_ context.Context, cfg domain.QuizConfig) (domain.QuizConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg == nil {
		return domain.QuizConfig{}, domain.ErrConfigNotFound
	}
	cfg.ID = domain.QuizConfigID
	cfg.CreatedAt = s.cfg.CreatedAt
	cfg.UpdatedAt = s.clock().UTC()
	s.cfg = &cfg
	return cfg, nil
}

// Exists reports whether the config row has been created.
func (s *ConfigStore) Exists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg != nil
}
