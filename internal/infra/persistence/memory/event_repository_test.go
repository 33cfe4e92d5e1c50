package memory

import (
	"context"
	"testing"
	"time"

	"catlog/internal/domain/entity"
	"catlog/internal/domain/period"
	"catlog/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_CreateEvent_MissingCat(t *testing.T) {
	fx := createTestRepositories()

	event := &entity.ToiletEvent{
		ID:         uuid.New(),
		CatID:      uuid.New(),
		EventType:  entity.EventTypeUrine,
		OccurredAt: time.Now().UTC(),
	}
	err := fx.events.CreateEvent(context.Background(), event)
	assert.Equal(t, repository.ErrCatNotFound, err)
}

func TestEventRepository_FindEventByID_OwnerScoped(t *testing.T) {
	fx := createTestRepositories()

	ctx := context.Background()
	now := time.Now().UTC()
	cat := seedCat(t, fx.cats, "owner-123", "Mochi", now)
	event := seedEvent(t, fx.events, cat.ID, entity.EventTypeFeces, now)

	found, err := fx.events.FindEventByID(ctx, event.ID, "owner-123")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, event.ID, found.ID)
	assert.Equal(t, entity.EventTypeFeces, found.EventType)

	// The owner of a different household sees nothing.
	found, err = fx.events.FindEventByID(ctx, event.ID, "owner-456")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestEventRepository_FindEventsWithFilter_NewestFirst(t *testing.T) {
	fx := createTestRepositories()

	ctx := context.Background()
	base := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	cat := seedCat(t, fx.cats, "owner-123", "Mochi", base)
	oldest := seedEvent(t, fx.events, cat.ID, entity.EventTypeUrine, base)
	middle := seedEvent(t, fx.events, cat.ID, entity.EventTypeFeces, base.Add(time.Hour))
	newest := seedEvent(t, fx.events, cat.ID, entity.EventTypeUrine, base.Add(2*time.Hour))

	page, err := fx.events.FindEventsWithFilter(ctx, repository.EventFilter{
		OwnerID: "owner-123",
		Page:    1,
		Limit:   20,
	})
	require.NoError(t, err)
	require.Len(t, page.Events, 3)
	assert.Equal(t, newest.ID, page.Events[0].ID)
	assert.Equal(t, middle.ID, page.Events[1].ID)
	assert.Equal(t, oldest.ID, page.Events[2].ID)
	assert.Equal(t, int64(3), page.TotalCount)
}

func TestEventRepository_FindEventsWithFilter_Pagination(t *testing.T) {
	fx := createTestRepositories()

	ctx := context.Background()
	base := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	cat := seedCat(t, fx.cats, "owner-123", "Mochi", base)
	for i := 0; i < 5; i++ {
		seedEvent(t, fx.events, cat.ID, entity.EventTypeUrine, base.Add(time.Duration(i)*time.Hour))
	}

	filter := repository.EventFilter{OwnerID: "owner-123", Page: 1, Limit: 2}

	page, err := fx.events.FindEventsWithFilter(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, page.Events, 2)
	assert.Equal(t, int64(5), page.TotalCount)
	assert.Equal(t, int64(3), page.TotalPages())

	filter.Page = 3
	page, err = fx.events.FindEventsWithFilter(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, page.Events, 1)
	assert.Equal(t, int64(5), page.TotalCount)

	// A page past the end is empty, not an error.
	filter.Page = 4
	page, err = fx.events.FindEventsWithFilter(ctx, filter)
	require.NoError(t, err)
	assert.Empty(t, page.Events)
	assert.Equal(t, int64(5), page.TotalCount)
}

func TestEventRepository_FindEventsWithFilter_Filters(t *testing.T) {
	fx := createTestRepositories()

	ctx := context.Background()
	base := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	mochi := seedCat(t, fx.cats, "owner-123", "Mochi", base)
	tama := seedCat(t, fx.cats, "owner-123", "Tama", base)
	urine := seedEvent(t, fx.events, mochi.ID, entity.EventTypeUrine, base)
	seedEvent(t, fx.events, mochi.ID, entity.EventTypeFeces, base.Add(time.Hour))
	seedEvent(t, fx.events, tama.ID, entity.EventTypeUrine, base.Add(2*time.Hour))

	page, err := fx.events.FindEventsWithFilter(ctx, repository.EventFilter{
		OwnerID: "owner-123",
		CatID:   &mochi.ID,
		Page:    1,
		Limit:   20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)

	eventType := entity.EventTypeUrine
	page, err = fx.events.FindEventsWithFilter(ctx, repository.EventFilter{
		OwnerID:   "owner-123",
		CatID:     &mochi.ID,
		EventType: &eventType,
		Page:      1,
		Limit:     20,
	})
	require.NoError(t, err)
	require.Len(t, page.Events, 1)
	assert.Equal(t, urine.ID, page.Events[0].ID)
}

func TestEventRepository_FindEventsWithFilter_InclusiveBounds(t *testing.T) {
	fx := createTestRepositories()

	ctx := context.Background()
	from := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	cat := seedCat(t, fx.cats, "owner-123", "Mochi", from)
	seedEvent(t, fx.events, cat.ID, entity.EventTypeUrine, from.Add(-time.Second))
	atFrom := seedEvent(t, fx.events, cat.ID, entity.EventTypeUrine, from)
	atTo := seedEvent(t, fx.events, cat.ID, entity.EventTypeFeces, to)
	seedEvent(t, fx.events, cat.ID, entity.EventTypeFeces, to.Add(time.Second))

	page, err := fx.events.FindEventsWithFilter(ctx, repository.EventFilter{
		OwnerID: "owner-123",
		From:    &from,
		To:      &to,
		Page:    1,
		Limit:   20,
	})
	require.NoError(t, err)
	require.Len(t, page.Events, 2)
	assert.Equal(t, atTo.ID, page.Events[0].ID)
	assert.Equal(t, atFrom.ID, page.Events[1].ID)
}

func TestEventRepository_UpdateEvent_AppliesSparseFields(t *testing.T) {
	fx := createTestRepositories()

	ctx := context.Background()
	occurred := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	cat := seedCat(t, fx.cats, "owner-123", "Mochi", occurred)
	event := seedEvent(t, fx.events, cat.ID, entity.EventTypeUrine, occurred)

	eventType := entity.EventTypeFeces
	err := fx.events.UpdateEvent(ctx, event.ID, "owner-123", repository.EventUpdate{
		EventType: &eventType,
		Note:      ptr("larger than usual"),
	})
	require.NoError(t, err)

	updated, err := fx.events.FindEventByID(ctx, event.ID, "owner-123")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entity.EventTypeFeces, updated.EventType)
	assert.Equal(t, "larger than usual", *updated.Note)
	assert.True(t, updated.OccurredAt.Equal(occurred))
}

func TestEventRepository_UpdateEvent_NotFound(t *testing.T) {
	fx := createTestRepositories()

	ctx := context.Background()
	cat := seedCat(t, fx.cats, "owner-123", "Mochi", time.Now().UTC())
	event := seedEvent(t, fx.events, cat.ID, entity.EventTypeUrine, time.Now().UTC())

	err := fx.events.UpdateEvent(ctx, uuid.New(), "owner-123", repository.EventUpdate{Note: ptr("x")})
	assert.Equal(t, repository.ErrEventNotFound, err)

	err = fx.events.UpdateEvent(ctx, event.ID, "owner-456", repository.EventUpdate{Note: ptr("x")})
	assert.Equal(t, repository.ErrEventNotFound, err)
}

func TestEventRepository_DeleteEvent(t *testing.T) {
	fx := createTestRepositories()

	ctx := context.Background()
	cat := seedCat(t, fx.cats, "owner-123", "Mochi", time.Now().UTC())
	event := seedEvent(t, fx.events, cat.ID, entity.EventTypeUrine, time.Now().UTC())

	require.NoError(t, fx.events.DeleteEvent(ctx, event.ID, "owner-123"))

	found, err := fx.events.FindEventByID(ctx, event.ID, "owner-123")
	require.NoError(t, err)
	assert.Nil(t, found)

	err = fx.events.DeleteEvent(ctx, event.ID, "owner-123")
	assert.Equal(t, repository.ErrEventNotFound, err)
}

func TestEventRepository_AggregateUsageByCat(t *testing.T) {
	fx := createTestRepositories()

	ctx := context.Background()
	base := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	mochi := seedCat(t, fx.cats, "owner-123", "Mochi", base)
	tama := seedCat(t, fx.cats, "owner-123", "Tama", base)
	other := seedCat(t, fx.cats, "owner-456", "Shiro", base)

	seedEvent(t, fx.events, mochi.ID, entity.EventTypeUrine, base)
	seedEvent(t, fx.events, mochi.ID, entity.EventTypeUrine, base.Add(time.Hour))
	seedEvent(t, fx.events, mochi.ID, entity.EventTypeFeces, base.Add(2*time.Hour))
	seedEvent(t, fx.events, tama.ID, entity.EventTypeFeces, base.Add(time.Hour))
	// Outside the window and foreign events must not count.
	seedEvent(t, fx.events, mochi.ID, entity.EventTypeUrine, base.Add(48*time.Hour))
	seedEvent(t, fx.events, other.ID, entity.EventTypeUrine, base)

	counts, err := fx.events.AggregateUsageByCat(ctx, "owner-123", base, base.Add(3*time.Hour))
	require.NoError(t, err)
	require.Len(t, counts, 2)

	byCat := make(map[uuid.UUID]*entity.CatUsageCount, len(counts))
	for _, count := range counts {
		byCat[count.CatID] = count
	}
	require.Contains(t, byCat, mochi.ID)
	require.Contains(t, byCat, tama.ID)
	assert.Equal(t, int64(2), byCat[mochi.ID].UrineCount)
	assert.Equal(t, int64(1), byCat[mochi.ID].FecesCount)
	assert.Equal(t, int64(0), byCat[tama.ID].UrineCount)
	assert.Equal(t, int64(1), byCat[tama.ID].FecesCount)
}

func TestEventRepository_AggregateUsageByPeriod_WeeklyBoundaries(t *testing.T) {
	fx := createTestRepositories()

	ctx := context.Background()
	cat := seedCat(t, fx.cats, "owner-123", "Mochi", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	// Sunday evening still belongs to the week of Monday the 1st; midnight
	// Monday opens the week of the 8th.
	seedEvent(t, fx.events, cat.ID, entity.EventTypeUrine, time.Date(2024, 1, 7, 23, 59, 0, 0, time.UTC))
	seedEvent(t, fx.events, cat.ID, entity.EventTypeFeces, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC))
	seedEvent(t, fx.events, cat.ID, entity.EventTypeUrine, time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC))

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)
	counts, err := fx.events.AggregateUsageByPeriod(ctx, "owner-123", nil, period.Weekly, from, to)
	require.NoError(t, err)
	require.Len(t, counts, 2)

	assert.Equal(t, "2024-01-01", counts[0].Period)
	assert.Equal(t, int64(1), counts[0].UrineCount)
	assert.Equal(t, int64(0), counts[0].FecesCount)

	assert.Equal(t, "2024-01-08", counts[1].Period)
	assert.Equal(t, int64(1), counts[1].UrineCount)
	assert.Equal(t, int64(1), counts[1].FecesCount)
}

func TestEventRepository_AggregateUsageByPeriod_MonthlyKeys(t *testing.T) {
	fx := createTestRepositories()

	ctx := context.Background()
	cat := seedCat(t, fx.cats, "owner-123", "Mochi", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	seedEvent(t, fx.events, cat.ID, entity.EventTypeUrine, time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC))
	seedEvent(t, fx.events, cat.ID, entity.EventTypeFeces, time.Date(2024, 2, 1, 1, 0, 0, 0, time.UTC))

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)
	counts, err := fx.events.AggregateUsageByPeriod(ctx, "owner-123", nil, period.Monthly, from, to)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "2024-01", counts[0].Period)
	assert.Equal(t, "2024-02", counts[1].Period)
}

func TestEventRepository_AggregateUsageByPeriod_SingleCat(t *testing.T) {
	fx := createTestRepositories()

	ctx := context.Background()
	day := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	mochi := seedCat(t, fx.cats, "owner-123", "Mochi", day)
	tama := seedCat(t, fx.cats, "owner-123", "Tama", day)
	seedEvent(t, fx.events, mochi.ID, entity.EventTypeUrine, day)
	seedEvent(t, fx.events, tama.ID, entity.EventTypeUrine, day)
	seedEvent(t, fx.events, tama.ID, entity.EventTypeFeces, day.Add(time.Hour))

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	counts, err := fx.events.AggregateUsageByPeriod(ctx, "owner-123", &tama.ID, period.Daily, from, to)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, "2024-03-10", counts[0].Period)
	assert.Equal(t, int64(1), counts[0].UrineCount)
	assert.Equal(t, int64(1), counts[0].FecesCount)
}
