package audit

import (
	"context"
	"log/slog"
	"time"
)

// Publisher hands events to the background worker. Emitting never blocks the
// request path: when the inbox is full the event is dropped and logged, since
// the audit trail is advisory rather than transactional.
type Publisher struct {
	inbox  chan<- Event
	logger *slog.Logger
}

func NewPublisher(inbox chan<- Event, logger *slog.Logger) *Publisher {
	return &Publisher{inbox: inbox, logger: logger}
}

func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case p.inbox <- event:
	default:
		p.logger.WarnContext(ctx, "audit inbox full, dropping event",
			"event_type", string(event.Type),
			"subject_id", event.SubjectID,
		)
	}
	return nil
}
