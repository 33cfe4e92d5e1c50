package memory

import (
	"context"
	"testing"
	"time"

	"catlog/internal/domain/entity"
	"catlog/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// repositoryFixtures holds both repositories over one shared store.
type repositoryFixtures struct {
	cats   repository.CatRepository
	events repository.EventRepository
}

func createTestRepositories() repositoryFixtures {
	store := NewStore()

	return repositoryFixtures{
		cats:   NewCatRepository(store),
		events: NewEventRepository(store),
	}
}

func seedCat(t *testing.T, repo repository.CatRepository, ownerID, name string, createdAt time.Time) *entity.Cat {
	t.Helper()

	cat := &entity.Cat{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, repo.CreateCat(context.Background(), cat))

	return cat
}

func seedEvent(t *testing.T, repo repository.EventRepository, catID uuid.UUID, eventType entity.EventType, occurredAt time.Time) *entity.ToiletEvent {
	t.Helper()

	event := &entity.ToiletEvent{
		ID:         uuid.New(),
		CatID:      catID,
		EventType:  eventType,
		OccurredAt: occurredAt,
		CreatedAt:  occurredAt,
		UpdatedAt:  occurredAt,
	}
	require.NoError(t, repo.CreateEvent(context.Background(), event))

	return event
}

func ptr[T any](v T) *T {
	return &v
}

func TestCatRepository_CreateAndFindByID(t *testing.T) {
	fx := createTestRepositories()

	ctx := context.Background()
	now := time.Now().UTC()
	cat := &entity.Cat{
		ID:        uuid.New(),
		OwnerID:   "owner-123",
		Name:      "Mochi",
		Breed:     ptr("Scottish Fold"),
		Weight:    ptr(4.2),
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, fx.cats.CreateCat(ctx, cat))

	found, err := fx.cats.FindCatByID(ctx, cat.ID, "owner-123")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, cat.ID, found.ID)
	assert.Equal(t, "Mochi", found.Name)
	assert.Equal(t, "Scottish Fold", *found.Breed)
	assert.Equal(t, 4.2, *found.Weight)
}

func TestCatRepository_FindCatByID_Missing(t *testing.T) {
	fx := createTestRepositories()

	ctx := context.Background()
	cat := seedCat(t, fx.cats, "owner-123", "Mochi", time.Now().UTC())

	found, err := fx.cats.FindCatByID(ctx, uuid.New(), "owner-123")
	require.NoError(t, err)
	assert.Nil(t, found)

	// A foreign owner must see exactly what a missing cat looks like.
	found, err = fx.cats.FindCatByID(ctx, cat.ID, "owner-456")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestCatRepository_FindCatsByOwner_OrdersByRegistration(t *testing.T) {
	fx := createTestRepositories()

	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	second := seedCat(t, fx.cats, "owner-123", "Tama", base.Add(time.Hour))
	first := seedCat(t, fx.cats, "owner-123", "Mochi", base)
	third := seedCat(t, fx.cats, "owner-123", "Kuro", base.Add(2*time.Hour))
	seedCat(t, fx.cats, "owner-456", "Shiro", base)

	cats, err := fx.cats.FindCatsByOwner(ctx, "owner-123")
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, first.ID, cats[0].ID)
	assert.Equal(t, second.ID, cats[1].ID)
	assert.Equal(t, third.ID, cats[2].ID)
}

func TestCatRepository_FindCatsByOwner_Empty(t *testing.T) {
	fx := createTestRepositories()

	cats, err := fx.cats.FindCatsByOwner(context.Background(), "owner-123")
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestCatRepository_UpdateCat_AppliesSparseFields(t *testing.T) {
	fx := createTestRepositories()

	ctx := context.Background()
	registered := time.Now().UTC().Add(-time.Hour)
	cat := seedCat(t, fx.cats, "owner-123", "Mochi", registered)

	err := fx.cats.UpdateCat(ctx, cat.ID, "owner-123", repository.CatUpdate{
		Name:   ptr("Mochi II"),
		Weight: ptr(4.8),
	})
	require.NoError(t, err)

	updated, err := fx.cats.FindCatByID(ctx, cat.ID, "owner-123")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Mochi II", updated.Name)
	assert.Equal(t, 4.8, *updated.Weight)
	assert.Nil(t, updated.Breed)
	assert.True(t, updated.UpdatedAt.After(registered))
}

func TestCatRepository_UpdateCat_NotFound(t *testing.T) {
	fx := createTestRepositories()

	ctx := context.Background()
	cat := seedCat(t, fx.cats, "owner-123", "Mochi", time.Now().UTC())

	err := fx.cats.UpdateCat(ctx, uuid.New(), "owner-123", repository.CatUpdate{Name: ptr("Tama")})
	assert.Equal(t, repository.ErrCatNotFound, err)

	err = fx.cats.UpdateCat(ctx, cat.ID, "owner-456", repository.CatUpdate{Name: ptr("Tama")})
	assert.Equal(t, repository.ErrCatNotFound, err)
}

func TestCatRepository_UpdateCat_EmptyUpdateIsNoop(t *testing.T) {
	fx := createTestRepositories()

	// An update that sets nothing reports success even for a missing cat,
	// mirroring the SQL driver which never reaches the database.
	err := fx.cats.UpdateCat(context.Background(), uuid.New(), "owner-123", repository.CatUpdate{})
	require.NoError(t, err)
}

func TestCatRepository_DeleteCat_RemovesCatAndEvents(t *testing.T) {
	fx := createTestRepositories()

	ctx := context.Background()
	now := time.Now().UTC()
	cat := seedCat(t, fx.cats, "owner-123", "Mochi", now)
	event := seedEvent(t, fx.events, cat.ID, entity.EventTypeUrine, now)
	seedEvent(t, fx.events, cat.ID, entity.EventTypeFeces, now.Add(time.Minute))

	require.NoError(t, fx.cats.DeleteCat(ctx, cat.ID, "owner-123"))

	found, err := fx.cats.FindCatByID(ctx, cat.ID, "owner-123")
	require.NoError(t, err)
	assert.Nil(t, found)

	foundEvent, err := fx.events.FindEventByID(ctx, event.ID, "owner-123")
	require.NoError(t, err)
	assert.Nil(t, foundEvent)

	counts, err := fx.events.AggregateUsageByCat(ctx, "owner-123", now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, counts)

	// Deleting again reports the cat as gone.
	err = fx.cats.DeleteCat(ctx, cat.ID, "owner-123")
	assert.Equal(t, repository.ErrCatNotFound, err)
}

func TestCatRepository_DeleteCat_ForeignOwner(t *testing.T) {
	fx := createTestRepositories()

	ctx := context.Background()
	cat := seedCat(t, fx.cats, "owner-123", "Mochi", time.Now().UTC())

	err := fx.cats.DeleteCat(ctx, cat.ID, "owner-456")
	assert.Equal(t, repository.ErrCatNotFound, err)

	found, err := fx.cats.FindCatByID(ctx, cat.ID, "owner-123")
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestCatRepository_ReturnsCopies(t *testing.T) {
	fx := createTestRepositories()

	ctx := context.Background()
	cat := seedCat(t, fx.cats, "owner-123", "Mochi", time.Now().UTC())

	found, err := fx.cats.FindCatByID(ctx, cat.ID, "owner-123")
	require.NoError(t, err)
	require.NotNil(t, found)

	// Mutating a returned entity must not leak into the store.
	found.Name = "Scratched"
	refetched, err := fx.cats.FindCatByID(ctx, cat.ID, "owner-123")
	require.NoError(t, err)
	assert.Equal(t, "Mochi", refetched.Name)
}
