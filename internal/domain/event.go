package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventAction string

const (
	EventCreated   EventAction = "created"
	EventUpdated   EventAction = "updated"
	EventFinalized EventAction = "finalized"
	EventCanceled  EventAction = "canceled"
)

// OccurrenceEvent is the audit/webhook payload queued after every
// successful lifecycle write.
type OccurrenceEvent struct {
	ID           uuid.UUID   `json:"id"`
	OccurrenceID uuid.UUID   `json:"occurrenceId"`
	TicketNumber string      `json:"numAviso"`
	Action       EventAction `json:"action"`
	Actor        string      `json:"actor,omitempty"`
	At           time.Time   `json:"at"`
}
