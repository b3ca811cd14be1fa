package memory

import (
	"context"
	"sync"
	"time"
)

// TokenRevoker keeps revoked token IDs until their expiry.
type TokenRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	clock   func() time.Time
}

func NewTokenRevoker() *TokenRevoker {
	return &TokenRevoker{revoked: make(map[string]time.Time), clock: time.Now}
}

func (r *TokenRevoker) Revoke(_ context.Context, jti string, until time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[jti] = until
	r.pruneLocked()
	return nil
}

func (r *TokenRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	until, ok := r.revoked[jti]
	if !ok {
		return false, nil
	}
	if !r.clock().Before(until) {
		delete(r.revoked, jti)
		return false, nil
	}
	return true, nil
}

func (r *TokenRevoker) pruneLocked() {
	now := r.clock()
	for jti, until := range r.revoked {
		if !now.Before(until) {
			delete(r.revoked, jti)
		}
	}
}
