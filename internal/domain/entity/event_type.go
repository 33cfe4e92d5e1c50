// Package entity contains the core business objects of the project.
package entity

// EventType represents the kind of toilet event recorded for a cat.
type EventType string

const (
	// EventTypeUrine indicates a urine event.
	EventTypeUrine EventType = "urine"
	// EventTypeFeces indicates a feces event.
	EventTypeFeces EventType = "feces"
)

// String returns the string representation of the EventType.
func (e EventType) String() string {
	return string(e)
}

// IsValid checks if the EventType is a valid value.
func (e EventType) IsValid() bool {
	switch e {
	case EventTypeUrine, EventTypeFeces:
		return true
	default:
		return false
	}
}
