package service

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// ImageStore defines the interface for storing cat profile images.
type ImageStore interface {
	// SaveCatImage stores the image for a cat and returns a stable
	// reference that can be served back to clients.
	SaveCatImage(ctx context.Context, catID uuid.UUID, contentType string, body io.Reader) (string, error)

	// DeleteCatImage removes a previously stored image by its reference.
	// Deleting a reference that no longer exists is not an error.
	DeleteCatImage(ctx context.Context, imageRef string) error
}
