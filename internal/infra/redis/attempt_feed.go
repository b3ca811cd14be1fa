package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"

	"quiz-backend/internal/domain"
)

// DefaultFeedChannel is the pub/sub channel attempt events travel on.
const DefaultFeedChannel = "quiz:attempts"

// AttemptFeed shares attempt events between service instances via Redis pub/sub.
// Nothing is stored: subscribers only see events published while they are connected.
type AttemptFeed struct {
	client  *redis.Client
	channel string
}

func NewAttemptFeed(client *redis.Client, channel string) *AttemptFeed {
	if channel == "" {
		channel = DefaultFeedChannel
	}
	return &AttemptFeed{client: client, channel: channel}
}

func (f *AttemptFeed) Publish(ctx context.Context, event domain.AttemptEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal attempt event: %w", err)
	}
	if err := f.client.Publish(ctx, f.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish attempt event: %w", err)
	}
	return nil
}

func (f *AttemptFeed) Subscribe(ctx context.Context) (<-chan domain.AttemptEvent, func(), error) {
	pubsub := f.client.Subscribe(ctx, f.channel)
	// Wait for the subscription to be confirmed so no publish after return is missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("subscribe %s: %w", f.channel, err)
	}

	out := make(chan domain.AttemptEvent, 8)
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(out)
		messages := pubsub.Channel()
		for {
			select {
			case <-done:
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var event domain.AttemptEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					log.Printf("attempt feed: drop malformed event: %v", err)
					continue
				}
				select {
				case out <- event:
				default:
					select {
					case <-out:
					default:
					}
					out <- event
				}
			}
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			_ = pubsub.Close()
			wg.Wait()
		})
	}
	return out, cancel, nil
}
