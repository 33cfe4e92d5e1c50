package usecase

import (
	"context"
	"io"
	"time"

	"catlog/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterCatInput represents the input for registering a new cat
type RegisterCatInput struct {
	Name      string     `json:"name" validate:"required,max=50"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Breed     *string    `json:"breed,omitempty" validate:"omitnil,max=50"`
	Weight    *float64   `json:"weight,omitempty" validate:"omitnil,gt=0"`
}

// UpdateCatInput represents the input for updating an existing cat.
// Nil fields are left unchanged.
type UpdateCatInput struct {
	Name      *string    `json:"name,omitempty" validate:"omitnil,min=1,max=50"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Breed     *string    `json:"breed,omitempty" validate:"omitnil,max=50"`
	Weight    *float64   `json:"weight,omitempty" validate:"omitnil,gt=0"`
}

// CatUsecase defines the interface for cat management use cases
type CatUsecase interface {
	// RegisterCat registers a new cat for the owner
	RegisterCat(ctx context.Context, ownerID string, input *RegisterCatInput) (*entity.Cat, error)

	// GetCat retrieves a single cat owned by the owner
	GetCat(ctx context.Context, ownerID string, catID uuid.UUID) (*entity.Cat, error)

	// ListCats retrieves all cats of the owner, oldest registration first
	ListCats(ctx context.Context, ownerID string) ([]*entity.Cat, error)

	// UpdateCat applies a sparse update to a cat owned by the owner
	UpdateCat(ctx context.Context, ownerID string, catID uuid.UUID, input *UpdateCatInput) (*entity.Cat, error)

	// DeleteCat removes a cat and its events. Refused until the caller
	// confirms the deletion explicitly.
	DeleteCat(ctx context.Context, ownerID string, catID uuid.UUID, confirmed bool) error

	// UploadCatImage stores a profile image for the cat and records its reference
	UploadCatImage(ctx context.Context, ownerID string, catID uuid.UUID, contentType string, body io.Reader) (*entity.Cat, error)
}
