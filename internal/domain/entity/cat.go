// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cat represents a cat registered by an owner for litter box tracking.
type Cat struct {
	ID        uuid.UUID  `json:"id"`         // The Global Unique Identifier (GUID) for the cat.
	OwnerID   string     `json:"owner_id"`   // Opaque identifier of the owner, taken from the verified token.
	Name      string     `json:"name"`       // Display name of the cat.
	BirthDate *time.Time `json:"birth_date"` // Date of birth, if known.
	Breed     *string    `json:"breed"`      // Breed description, if known.
	Weight    *float64   `json:"weight"`     // Body weight in kilograms, if known.
	ImageURL  *string    `json:"image_url"`  // Reference to the cat's profile image, if uploaded.
	CreatedAt time.Time  `json:"created_at"` // Timestamp of when the cat was registered.
	UpdatedAt time.Time  `json:"updated_at"` // Timestamp of the last modification.
}
