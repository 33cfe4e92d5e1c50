// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ToiletEvent represents a single litter box usage recorded for a cat.
type ToiletEvent struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the event.
	CatID      uuid.UUID `json:"cat_id"`      // The ID of the cat this event belongs to.
	EventType  EventType `json:"event_type"`  // Kind of event (urine, feces).
	OccurredAt time.Time `json:"occurred_at"` // When the event happened. Defaults to recording time.
	Note       *string   `json:"note"`        // Free-form observation note, if any.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of when this event was recorded.
	UpdatedAt  time.Time `json:"updated_at"`  // Timestamp of the last modification.
}
