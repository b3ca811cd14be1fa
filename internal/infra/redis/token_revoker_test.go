package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestTokenRevokerKeyExpiresWithToken(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	revoker := NewTokenRevoker(client)
	revoker.clock = func() time.Time { return now }

	if err := revoker.Revoke(ctx, "jti-1", now.Add(10*time.Minute)); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if !mr.Exists("auth:revoked:jti-1") {
		t.Fatalf("expected redis key to be set")
	}
	if ttl := mr.TTL("auth:revoked:jti-1"); ttl != 10*time.Minute {
		t.Fatalf("expected ttl 10m, got %v", ttl)
	}
	revoked, err := revoker.IsRevoked(ctx, "jti-1")
	if err != nil || !revoked {
		t.Fatalf("expected revoked, got %v err=%v", revoked, err)
	}

	mr.FastForward(10 * time.Minute)
	if revoked, _ := revoker.IsRevoked(ctx, "jti-1"); revoked {
		t.Fatalf("expected key to expire with the token")
	}
}

func TestTokenRevokerSkipsExpiredTokens(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	revoker := NewTokenRevoker(client)

	if err := revoker.Revoke(context.Background(), "old", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if mr.Exists("auth:revoked:old") {
		t.Fatalf("expired tokens need no revocation entry")
	}
}
