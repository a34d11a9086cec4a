package chain

import (
	"context"
	"errors"
	"sync"
)

// ErrTipConflict is returned by CommitTip when another writer advanced the
// chain first. The caller should re-read the tip and rebuild its link.
var ErrTipConflict = errors.New("chain: tip advanced concurrently")

// TipStore tracks the hash of the most recently issued record. CommitTip is
// compare-and-swap: it only advances the tip if the caller's view of it is
// still current, which keeps concurrent issuance linear.
type TipStore interface {
	Tip(ctx context.Context) (string, error)
	CommitTip(ctx context.Context, old, new string) error
}

// MemoryTipStore keeps the tip in process memory.
type MemoryTipStore struct {
	mu  sync.Mutex
	tip string
}

// NewMemoryTipStore seeds the store. An empty seed starts a new chain at
// Genesis.
func NewMemoryTipStore(seed string) *MemoryTipStore {
	if seed == "" {
		seed = Genesis
	}
	return &MemoryTipStore{tip: seed}
}

func (s *MemoryTipStore) Tip(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tip, nil
}

func (s *MemoryTipStore) CommitTip(_ context.Context, old, new string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tip != old {
		return ErrTipConflict
	}
	s.tip = new
	return nil
}
