package eventsource

import (
	"time"

	"github.com/google/uuid"
)

// Event is one externally triggered occurrence.
type Event struct {
	ID      uuid.UUID      `json:"id"`
	Name    string         `json:"name"`
	Payload map[string]any `json:"payload,omitempty"`
	At      time.Time      `json:"at"`
}

// NewEvent creates an Event with a fresh ID, stamped now.
func NewEvent(name string, payload map[string]any) Event {
	return Event{
		ID:      uuid.New(),
		Name:    name,
		Payload: payload,
		At:      time.Now(),
	}
}
