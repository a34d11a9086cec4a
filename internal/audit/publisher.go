// Package audit records key domain actions. Events land in a store for
// inspection and, when a Kafka sink is configured, are shipped to a topic by
// a background worker.
package audit

import (
	"context"
	"sync"
	"time"
)

// Store is an append-only event sink.
type Store interface {
	Append(ctx context.Context, ev Event) error
	List(ctx context.Context) ([]Event, error)
}

// Publisher captures structured audit events. It is append-only and uses the
// storage layer for persistence so tests can swap sinks easily.
type Publisher struct {
	store Store
	now   func() time.Time

	mu    sync.Mutex
	inbox chan<- Event
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store, now: time.Now}
}

// Forward attaches a channel that also receives every emitted event. Used to
// feed the Kafka worker without coupling the publisher to the transport.
func (p *Publisher) Forward(inbox chan<- Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inbox = inbox
}

// Emit stores the event and forwards it if a worker is attached. A full inbox
// drops the forwarded copy rather than blocking domain logic.
func (p *Publisher) Emit(ctx context.Context, ev Event) error {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = p.now()
	}
	if err := p.store.Append(ctx, ev); err != nil {
		return err
	}
	p.mu.Lock()
	inbox := p.inbox
	p.mu.Unlock()
	if inbox != nil {
		select {
		case inbox <- ev:
		default:
		}
	}
	return nil
}

func (p *Publisher) List(ctx context.Context) ([]Event, error) {
	return p.store.List(ctx)
}

// MemoryStore keeps events in memory. The default sink when Kafka is not
// configured, and the test double everywhere else.
type MemoryStore struct {
	mu     sync.RWMutex
	events []Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out, nil
}
