package audit

import (
	"context"
	"log/slog"
)

// Worker consumes audit events from the inbox and persists them. A failing
// sink is logged and skipped so one bad event never stalls the trail.
type Worker struct {
	store  Store
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store Store, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "failed to append audit event",
					"event_type", string(event.Type),
					"subject_id", event.SubjectID,
					"error", err,
				)
			}
		}
	}
}
