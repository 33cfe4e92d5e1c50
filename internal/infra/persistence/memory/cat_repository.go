package memory

import (
	"context"
	"sort"
	"time"

	"catlog/internal/domain/entity"
	"catlog/internal/domain/repository"

	"github.com/google/uuid"
)

// catRepository implements the repository.CatRepository interface on the
// shared store.
type catRepository struct {
	store *Store
}

// NewCatRepository is the constructor for catRepository.
func NewCatRepository(store *Store) repository.CatRepository {
	return &catRepository{
		store: store,
	}
}

// CreateCat persists a new cat.
func (repo *catRepository) CreateCat(ctx context.Context, cat *entity.Cat) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.cats[cat.ID] = cloneCat(cat)

	return nil
}

// FindCatByID retrieves a cat by its ID, scoped to the owner. A cat that
// belongs to someone else comes back as (nil, nil), same as a missing cat.
func (repo *catRepository) FindCatByID(ctx context.Context, id uuid.UUID, ownerID string) (*entity.Cat, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	cat, ok := repo.store.cats[id]
	if !ok || cat.OwnerID != ownerID {
		return nil, nil
	}

	return cloneCat(cat), nil
}

// FindCatsByOwner retrieves all cats of an owner, oldest registration first.
func (repo *catRepository) FindCatsByOwner(ctx context.Context, ownerID string) ([]*entity.Cat, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	cats := make([]*entity.Cat, 0)
	for _, cat := range repo.store.cats {
		if cat.OwnerID != ownerID {
			continue
		}

		cats = append(cats, cloneCat(cat))
	}

	sort.Slice(cats, func(i, j int) bool {
		if cats[i].CreatedAt.Equal(cats[j].CreatedAt) {
			return cats[i].ID.String() < cats[j].ID.String()
		}

		return cats[i].CreatedAt.Before(cats[j].CreatedAt)
	})

	return cats, nil
}

// UpdateCat applies a sparse update to the cat matching id and owner. Nil
// fields stay untouched.
func (repo *catRepository) UpdateCat(ctx context.Context, id uuid.UUID, ownerID string, update repository.CatUpdate) error {
	if !update.HasChanges() {
		return nil
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	cat, ok := repo.store.cats[id]
	if !ok || cat.OwnerID != ownerID {
		return repository.ErrCatNotFound
	}

	if update.Name != nil {
		cat.Name = *update.Name
	}
	if update.BirthDate != nil {
		cat.BirthDate = clonePtr(update.BirthDate)
	}
	if update.Breed != nil {
		cat.Breed = clonePtr(update.Breed)
	}
	if update.Weight != nil {
		cat.Weight = clonePtr(update.Weight)
	}
	if update.ImageURL != nil {
		cat.ImageURL = clonePtr(update.ImageURL)
	}
	cat.UpdatedAt = time.Now().UTC()

	return nil
}

// DeleteCat removes the cat matching id and owner together with its toilet
// events.
func (repo *catRepository) DeleteCat(ctx context.Context, id uuid.UUID, ownerID string) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	cat, ok := repo.store.cats[id]
	if !ok || cat.OwnerID != ownerID {
		return repository.ErrCatNotFound
	}

	delete(repo.store.cats, id)
	for eventID, event := range repo.store.events {
		if event.CatID == id {
			delete(repo.store.events, eventID)
		}
	}

	return nil
}
