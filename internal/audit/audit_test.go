package audit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisherStampsTimestamp(t *testing.T) {
	store := NewMemoryStore()
	pub := NewPublisher(store)
	fixed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	pub.now = func() time.Time { return fixed }

	require.NoError(t, pub.Emit(context.Background(), Event{Action: ActionIdentityGenerated, Country: "CN"}))

	events, err := pub.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, fixed, events[0].Timestamp)
	assert.Equal(t, ActionIdentityGenerated, events[0].Action)
}

func TestPublisherKeepsExplicitTimestamp(t *testing.T) {
	pub := NewPublisher(NewMemoryStore())
	stamped := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, pub.Emit(context.Background(), Event{Action: ActionKeyIssued, Timestamp: stamped}))

	events, err := pub.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, stamped, events[0].Timestamp)
}

func TestPublisherForwardsToInbox(t *testing.T) {
	pub := NewPublisher(NewMemoryStore())
	inbox := make(chan Event, 1)
	pub.Forward(inbox)

	require.NoError(t, pub.Emit(context.Background(), Event{Action: ActionHistorySaved}))

	select {
	case ev := <-inbox:
		assert.Equal(t, ActionHistorySaved, ev.Action)
	default:
		t.Fatal("expected forwarded event")
	}
}

func TestPublisherDropsWhenInboxFull(t *testing.T) {
	pub := NewPublisher(NewMemoryStore())
	inbox := make(chan Event) // unbuffered, nobody reading
	pub.Forward(inbox)

	require.NoError(t, pub.Emit(context.Background(), Event{Action: ActionHistorySaved}))

	events, err := pub.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *recordingSink) Publish(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, ev)
	return nil
}

func (s *recordingSink) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func TestWorkerDrainsInbox(t *testing.T) {
	sink := &recordingSink{}
	inbox := make(chan Event, 4)
	worker := NewWorker(sink, inbox, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	inbox <- Event{Action: ActionIdentityGenerated}
	inbox <- Event{Action: ActionExternalServed}

	assert.Eventually(t, func() bool { return sink.len() == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWorkerSurvivesSinkFailure(t *testing.T) {
	sink := &recordingSink{err: errors.New("broker down")}
	inbox := make(chan Event, 1)
	worker := NewWorker(sink, inbox, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	inbox <- Event{Action: ActionKeyIssued}
	inbox <- Event{Action: ActionKeyIssued}

	assert.Eventually(t, func() bool { return len(inbox) == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
