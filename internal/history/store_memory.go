package history

import (
	"context"
	"sync"
	"time"

	"identikit/pkg/platform/sentinel"
)

// Clock abstracts time for testability.
type Clock func() time.Time

// MemoryStore is an in-memory history log for development and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
	nextID  int64
	clock   Clock
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithClock sets the clock function for testability.
func WithClock(clock Clock) MemoryStoreOption {
	return func(s *MemoryStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewMemoryStore constructs an empty in-memory history store.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		nextID: 1,
		clock:  time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *MemoryStore) Save(_ context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.BlockchainHash == entry.BlockchainHash {
			return sentinel.ErrConflict
		}
	}

	entry.ID = s.nextID
	s.nextID++
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.clock()
	}
	s.entries = append(s.entries, *entry)

	if excess := len(s.entries) - MaxEntries; excess > 0 {
		s.entries = s.entries[excess:]
	}
	return nil
}

func (s *MemoryStore) Recent(_ context.Context) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := s.clock().AddDate(0, -RetentionMonths, 0)
	out := make([]Entry, 0, ReadLimit)
	for i := len(s.entries) - 1; i >= 0 && len(out) < ReadLimit; i-- {
		if s.entries[i].CreatedAt.Before(cutoff) {
			continue
		}
		out = append(out, s.entries[i])
	}
	return out, nil
}

func (s *MemoryStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return sentinel.ErrNotFound
}

func (s *MemoryStore) LastHash(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.entries) == 0 {
		return "", nil
	}
	return s.entries[len(s.entries)-1].BlockchainHash, nil
}
