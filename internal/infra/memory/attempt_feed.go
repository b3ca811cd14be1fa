package memory

import (
	"context"
	"sync"

	"quiz-backend/internal/domain"
)

// AttemptFeed broadcasts attempt events to in-process subscribers.
type AttemptFeed struct {
	mu          sync.Mutex
	subscribers map[chan domain.AttemptEvent]struct{}
}

func NewAttemptFeed() *AttemptFeed {
	return &AttemptFeed{subscribers: make(map[chan domain.AttemptEvent]struct{})}
}

func (f *AttemptFeed) Publish(_ context.Context, event domain.AttemptEvent) error {
	f.Broadcast(event)
	return nil
}

// Broadcast delivers to every subscriber without blocking; a full subscriber loses its
// oldest pending event.
func (f *AttemptFeed) Broadcast(event domain.AttemptEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for ch := range f.subscribers {
		select {
		case ch <- event:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- event
		}
	}
}

func (f *AttemptFeed) Subscribe(_ context.Context) (<-chan domain.AttemptEvent, func(), error) {
	ch := make(chan domain.AttemptEvent, 8)

	f.mu.Lock()
	f.subscribers[ch] = struct{}{}
	f.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subscribers, ch)
			close(ch)
			f.mu.Unlock()
		})
	}
	return ch, cancel, nil
}

// Subscribers reports how many listeners are attached.
func (f *AttemptFeed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subscribers)
}
