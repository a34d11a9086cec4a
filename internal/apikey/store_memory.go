package apikey

import (
	"context"
	"sync"
	"time"
)

// MemoryRevocationList keeps revoked key IDs in a map with their expiry.
// Suitable for single-instance deployments and tests.
type MemoryRevocationList struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
	now     func() time.Time
}

type MemoryRevocationListOption func(*MemoryRevocationList)

func WithMemoryClock(now func() time.Time) MemoryRevocationListOption {
	return func(l *MemoryRevocationList) { l.now = now }
}

func NewMemoryRevocationList(opts ...MemoryRevocationListOption) *MemoryRevocationList {
	l := &MemoryRevocationList{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *MemoryRevocationList) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if jti == "" {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.revoked[jti] = l.now().Add(ttl)
	return nil
}

func (l *MemoryRevocationList) IsRevoked(_ context.Context, jti string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	until, ok := l.revoked[jti]
	if !ok {
		return false, nil
	}
	if l.now().After(until) {
		delete(l.revoked, jti)
		return false, nil
	}
	return true, nil
}
