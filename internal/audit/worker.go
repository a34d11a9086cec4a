package audit

import (
	"context"
	"log/slog"
)

// Sink receives events drained by the worker.
type Sink interface {
	Publish(ctx context.Context, ev Event) error
}

// Worker consumes audit events from a channel and forwards them to a sink.
// Publish failures are logged and skipped; audit delivery must never stall
// identity generation.
type Worker struct {
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{sink: sink, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-w.inbox:
			if err := w.sink.Publish(ctx, ev); err != nil {
				w.logger.WarnContext(ctx, "audit publish failed",
					slog.String("action", string(ev.Action)),
					slog.String("error", err.Error()))
			}
		}
	}
}
