// Package memory contains an in-process implementation of the persistence
// layer backed by plain maps. It serves development mode and repository-level
// tests; PostgreSQL is the production driver.
package memory

import (
	"sync"

	"catlog/internal/domain/entity"

	"github.com/google/uuid"
)

// Store holds the shared state behind the memory repositories. Cats and
// events live in one store so deleting a cat can drop its events and event
// operations can check cat ownership.
type Store struct {
	mu     sync.RWMutex
	cats   map[uuid.UUID]*entity.Cat
	events map[uuid.UUID]*entity.ToiletEvent
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		cats:   make(map[uuid.UUID]*entity.Cat),
		events: make(map[uuid.UUID]*entity.ToiletEvent),
	}
}

// cloneCat returns a deep copy so callers never alias the store's state.
func cloneCat(data *entity.Cat) *entity.Cat {
	if data == nil {
		return nil
	}

	clone := *data
	clone.BirthDate = clonePtr(data.BirthDate)
	clone.Breed = clonePtr(data.Breed)
	clone.Weight = clonePtr(data.Weight)
	clone.ImageURL = clonePtr(data.ImageURL)

	return &clone
}

// cloneEvent returns a deep copy so callers never alias the store's state.
func cloneEvent(data *entity.ToiletEvent) *entity.ToiletEvent {
	if data == nil {
		return nil
	}

	clone := *data
	clone.Note = clonePtr(data.Note)

	return &clone
}

// clonePtr copies the value behind p into a fresh pointer.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}
