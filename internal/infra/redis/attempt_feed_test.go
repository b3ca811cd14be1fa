package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"quiz-backend/internal/domain"
)

func TestAttemptFeedRoundTripsBetweenClients(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	subscriber := NewAttemptFeed(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "")
	publisher := NewAttemptFeed(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "")

	events, cancel, err := subscriber.Subscribe(ctx)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer cancel()

	// Malformed payloads are skipped without breaking the stream.
	mr.Publish(DefaultFeedChannel, "not json")

	if err := publisher.Publish(ctx, domain.AttemptEvent{AttemptID: 7, Username: "alice", Band: domain.BandGood}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case event := <-events:
		if event.AttemptID != 7 || event.Username != "alice" || event.Band != domain.BandGood {
			t.Fatalf("unexpected event %+v", event)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for event")
	}
}

func TestAttemptFeedCancelClosesChannel(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	feed := NewAttemptFeed(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "custom:channel")
	events, cancel, err := feed.Subscribe(context.Background())
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	cancel()
	cancel()

	select {
	case _, ok := <-events:
		if ok {
			t.Fatalf("expected closed channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("channel not closed after cancel")
	}
}
