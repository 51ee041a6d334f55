package event

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType is "<resource>.<action>", e.g. "doadores.created".
type EventType string

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

func NewEventType(resource, action string) EventType {
	return EventType(resource + "." + action)
}

// Event is the change notification published after a successful mutation.
type Event struct {
	ID         uuid.UUID   `json:"id"`
	Type       EventType   `json:"type"`
	Resource   string      `json:"resource"`
	Action     string      `json:"action"`
	ResourceID string      `json:"resource_id"`
	Payload    interface{} `json:"payload,omitempty"`
	RequestID  string      `json:"request_id,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// EventContext is filled by a handler during a tracked request.
type EventContext struct {
	Resource   string
	Operation  string
	ResourceID string
	NewData    interface{}
}

type EventService interface {
	Emit(ctx context.Context, event *Event) error
}
