package impl

import (
	"context"
	"io"
	"time"

	"catlog/internal/domain/entity"
	domainerrors "catlog/internal/domain/errors"
	"catlog/internal/domain/repository"
	"catlog/internal/domain/service"
	"catlog/internal/errors"
	"catlog/internal/usecase"

	"github.com/google/uuid"
)

// allowedImageTypes bounds what UploadCatImage accepts.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type catService struct {
	catRepo    repository.CatRepository
	imageStore service.ImageStore
}

// NewCatService creates a new cat service instance
func NewCatService(catRepo repository.CatRepository, imageStore service.ImageStore) usecase.CatUsecase {
	return &catService{
		catRepo:    catRepo,
		imageStore: imageStore,
	}
}

// RegisterCat registers a new cat for the owner
func (s *catService) RegisterCat(ctx context.Context, ownerID string, input *usecase.RegisterCatInput) (*entity.Cat, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	cat := &entity.Cat{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      input.Name,
		BirthDate: input.BirthDate,
		Breed:     input.Breed,
		Weight:    input.Weight,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.catRepo.CreateCat(ctx, cat); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "create cat")
	}

	return cat, nil
}

// GetCat retrieves a single cat owned by the owner
func (s *catService) GetCat(ctx context.Context, ownerID string, catID uuid.UUID) (*entity.Cat, error) {
	cat, err := s.catRepo.FindCatByID(ctx, catID, ownerID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find cat")
	}
	if cat == nil {
		return nil, domainerrors.NewNotFoundError("cat", catID.String())
	}

	return cat, nil
}

// ListCats retrieves all cats of the owner, oldest registration first
func (s *catService) ListCats(ctx context.Context, ownerID string) ([]*entity.Cat, error) {
	cats, err := s.catRepo.FindCatsByOwner(ctx, ownerID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list cats")
	}

	return cats, nil
}

// UpdateCat applies a sparse update to a cat owned by the owner
func (s *catService) UpdateCat(ctx context.Context, ownerID string, catID uuid.UUID, input *usecase.UpdateCatInput) (*entity.Cat, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	update := repository.CatUpdate{
		Name:      input.Name,
		BirthDate: input.BirthDate,
		Breed:     input.Breed,
		Weight:    input.Weight,
	}

	// An empty patch changes nothing; skip the write so RowsAffected
	// cannot be mistaken for a missing cat.
	if update.HasChanges() {
		if err := s.catRepo.UpdateCat(ctx, catID, ownerID, update); err != nil {
			if errors.Is(err, repository.ErrCatNotFound) {
				return nil, domainerrors.NewNotFoundError("cat", catID.String())
			}

			return nil, domainerrors.NewDatabaseExecuteError(err, "update cat")
		}
	}

	return s.GetCat(ctx, ownerID, catID)
}

// DeleteCat removes a cat and its events after explicit confirmation
func (s *catService) DeleteCat(ctx context.Context, ownerID string, catID uuid.UUID, confirmed bool) error {
	// The gate comes first: without confirmation the repository is never
	// touched, not even to check existence.
	if !confirmed {
		return domainerrors.ErrConfirmationRequired
	}

	if err := s.catRepo.DeleteCat(ctx, catID, ownerID); err != nil {
		if errors.Is(err, repository.ErrCatNotFound) {
			return domainerrors.NewNotFoundError("cat", catID.String())
		}

		return domainerrors.NewDatabaseExecuteError(err, "delete cat")
	}

	return nil
}

// UploadCatImage stores a profile image for the cat and records its reference
func (s *catService) UploadCatImage(ctx context.Context, ownerID string, catID uuid.UUID, contentType string, body io.Reader) (*entity.Cat, error) {
	if !allowedImageTypes[contentType] {
		return nil, domainerrors.NewValidationError("image", "image must be jpeg, png or webp")
	}

	cat, err := s.catRepo.FindCatByID(ctx, catID, ownerID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find cat")
	}
	if cat == nil {
		return nil, domainerrors.NewNotFoundError("cat", catID.String())
	}

	imageRef, err := s.imageStore.SaveCatImage(ctx, catID, contentType, body)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "store cat image")
	}

	update := repository.CatUpdate{ImageURL: &imageRef}
	if err := s.catRepo.UpdateCat(ctx, catID, ownerID, update); err != nil {
		if errors.Is(err, repository.ErrCatNotFound) {
			return nil, domainerrors.NewNotFoundError("cat", catID.String())
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "update cat image")
	}

	// Replacing an image leaves the previous object behind; cleanup is
	// best effort and must not fail the upload.
	if cat.ImageURL != nil && *cat.ImageURL != imageRef {
		_ = s.imageStore.DeleteCatImage(ctx, *cat.ImageURL)
	}

	return s.GetCat(ctx, ownerID, catID)
}
