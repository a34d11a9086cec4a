package history

import (
	"context"
)

// Store persists generation history. Save trims the log to MaxEntries;
// Recent returns at most ReadLimit entries from the retention window, newest
// first. Implementations return sentinel.ErrConflict for a duplicate
// blockchain hash and sentinel.ErrNotFound for a missing delete target.
type Store interface {
	Save(ctx context.Context, entry *Entry) error
	Recent(ctx context.Context) ([]Entry, error)
	Delete(ctx context.Context, id int64) error
	LastHash(ctx context.Context) (string, error)
}
