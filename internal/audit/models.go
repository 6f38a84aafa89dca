package audit

import (
	"context"
	"time"
)

// EventType enumerates the lifecycle actions captured in the audit trail.
type EventType string

const (
	EventTipCreated EventType = "tip.created"
	EventTipEdited  EventType = "tip.edited"
	EventTipExpired EventType = "tip.expired"
	EventTipDeleted EventType = "tip.deleted"
	EventFAQChanged EventType = "faq.changed"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Type      EventType         `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	ActorID   string            `json:"actor_id,omitempty"`
	SubjectID string            `json:"subject_id"`
	RequestID string            `json:"request_id,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Store is the append-only sink an Event lands in.
type Store interface {
	Append(ctx context.Context, event Event) error
}
