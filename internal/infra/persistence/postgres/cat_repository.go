// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"catlog/internal/domain/entity"
	"catlog/internal/domain/repository"
	"catlog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catRepository implements the repository.CatRepository interface.
type catRepository struct {
	db *gorm.DB
}

// NewCatRepository is the constructor for catRepository.
func NewCatRepository(db *gorm.DB) repository.CatRepository {
	return &catRepository{
		db: db,
	}
}

// CreateCat persists a new cat.
func (repo *catRepository) CreateCat(ctx context.Context, cat *entity.Cat) error {
	catM := fromCatDomain(cat)

	if err := repo.db.WithContext(ctx).Create(catM).Error; err != nil {
		return errors.Wrap(err, "failed to create cat")
	}

	// Update the entity with generated values
	cat.ID = catM.ID
	cat.CreatedAt = catM.CreatedAt
	cat.UpdatedAt = catM.UpdatedAt

	return nil
}

// FindCatByID retrieves a cat by its ID, scoped to the owner. A cat that
// belongs to someone else comes back as (nil, nil), same as a missing cat.
func (repo *catRepository) FindCatByID(ctx context.Context, id uuid.UUID, ownerID string) (*entity.Cat, error) {
	var catM model.CatModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&catM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find cat by ID")
	}

	return toCatDomain(&catM), nil
}

// FindCatsByOwner retrieves all cats of an owner, oldest registration first.
func (repo *catRepository) FindCatsByOwner(ctx context.Context, ownerID string) ([]*entity.Cat, error) {
	var catModels []*model.CatModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&catModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cats by owner")
	}

	cats := make([]*entity.Cat, 0, len(catModels))
	for _, catM := range catModels {
		cats = append(cats, toCatDomain(catM))
	}

	return cats, nil
}

// UpdateCat applies a sparse update to the cat matching id and owner. Nil
// fields stay untouched.
func (repo *catRepository) UpdateCat(ctx context.Context, id uuid.UUID, ownerID string, update repository.CatUpdate) error {
	updates := map[string]any{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.BirthDate != nil {
		updates["birth_date"] = *update.BirthDate
	}
	if update.Breed != nil {
		updates["breed"] = *update.Breed
	}
	if update.Weight != nil {
		updates["weight"] = *update.Weight
	}
	if update.ImageURL != nil {
		updates["image_url"] = *update.ImageURL
	}

	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CatModel{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cat")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCatNotFound
	}

	return nil
}

// DeleteCat removes the cat matching id and owner together with its toilet
// events (soft delete). Both deletes ride one transaction so a cat never
// disappears while its history stays visible.
func (repo *catRepository) DeleteCat(ctx context.Context, id uuid.UUID, ownerID string) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("id = ? AND owner_id = ?", id, ownerID).
			Delete(&model.CatModel{})

		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete cat")
		}

		if result.RowsAffected == 0 {
			return repository.ErrCatNotFound
		}

		// Ownership is already proven by the delete above, so the events
		// only need the cat ID.
		if err := tx.
			Where("cat_id = ?", id).
			Delete(&model.ToiletEventModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete toilet events of cat")
		}

		return nil
	})
}

// --- Mapper Functions ---

// toCatDomain converts a GORM CatModel to a domain Cat entity.
func toCatDomain(data *model.CatModel) *entity.Cat {
	if data == nil {
		return nil
	}

	return &entity.Cat{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		BirthDate: data.BirthDate,
		Breed:     data.Breed,
		Weight:    data.Weight,
		ImageURL:  data.ImageURL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCatDomain converts a domain Cat entity to a GORM CatModel.
func fromCatDomain(data *entity.Cat) *model.CatModel {
	if data == nil {
		return nil
	}

	return &model.CatModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		BirthDate: data.BirthDate,
		Breed:     data.Breed,
		Weight:    data.Weight,
		ImageURL:  data.ImageURL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
