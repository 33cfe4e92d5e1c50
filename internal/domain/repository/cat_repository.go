// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"catlog/internal/domain/entity"
	"catlog/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cat persistence.
var (
	// ErrCatNotFound is returned by mutations when no cat matches the id and owner.
	ErrCatNotFound = errors.New("cat not found")
)

// CatUpdate carries the fields of a sparse cat update. Nil fields are left
// unchanged.
type CatUpdate struct {
	Name      *string
	BirthDate *time.Time
	Breed     *string
	Weight    *float64
	ImageURL  *string
}

// HasChanges reports whether the update sets any field.
func (u CatUpdate) HasChanges() bool {
	return u.Name != nil || u.BirthDate != nil || u.Breed != nil || u.Weight != nil || u.ImageURL != nil
}

// CatRepository defines the interface for cat-related database operations.
// Every operation is scoped to an owner: a cat belonging to someone else is
// indistinguishable from a cat that does not exist.
type CatRepository interface {
	// CreateCat persists a new cat.
	CreateCat(ctx context.Context, cat *entity.Cat) error

	// FindCatByID retrieves a cat by id for the given owner. Returns
	// (nil, nil) when no matching cat exists; absence is a lookup result,
	// not an error.
	FindCatByID(ctx context.Context, id uuid.UUID, ownerID string) (*entity.Cat, error)

	// FindCatsByOwner retrieves all cats of an owner, ordered by
	// registration time ascending.
	FindCatsByOwner(ctx context.Context, ownerID string) ([]*entity.Cat, error)

	// UpdateCat applies a sparse update to the cat matching id and owner.
	// Returns ErrCatNotFound when no row matches.
	UpdateCat(ctx context.Context, id uuid.UUID, ownerID string, update CatUpdate) error

	// DeleteCat removes the cat matching id and owner together with its
	// toilet events. Returns ErrCatNotFound when no row matches.
	DeleteCat(ctx context.Context, id uuid.UUID, ownerID string) error
}
