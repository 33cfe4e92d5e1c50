package memory

import (
	"context"
	"sort"
	"time"

	"catlog/internal/domain/entity"
	"catlog/internal/domain/period"
	"catlog/internal/domain/repository"

	"github.com/google/uuid"
)

// eventRepository implements the repository.EventRepository interface on the
// shared store. Ownership of events is transitive through the cat.
type eventRepository struct {
	store *Store
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(store *Store) repository.EventRepository {
	return &eventRepository{
		store: store,
	}
}

// CreateEvent persists a new toilet event. A missing cat is reported like
// the foreign key violation the SQL driver would raise.
func (repo *eventRepository) CreateEvent(ctx context.Context, event *entity.ToiletEvent) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.cats[event.CatID]; !ok {
		return repository.ErrCatNotFound
	}

	repo.store.events[event.ID] = cloneEvent(event)

	return nil
}

// FindEventByID retrieves an event by its ID, scoped to the owner of the cat
// it belongs to.
func (repo *eventRepository) FindEventByID(ctx context.Context, id uuid.UUID, ownerID string) (*entity.ToiletEvent, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	event, ok := repo.store.events[id]
	if !ok || !repo.ownsLocked(event.CatID, ownerID) {
		return nil, nil
	}

	return cloneEvent(event), nil
}

// FindEventsWithFilter retrieves one page of events matching the filter,
// newest first, together with the unpaginated total.
func (repo *eventRepository) FindEventsWithFilter(ctx context.Context, filter repository.EventFilter) (*repository.EventPage, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	matched := make([]*entity.ToiletEvent, 0)
	for _, event := range repo.store.events {
		if !repo.ownsLocked(event.CatID, filter.OwnerID) {
			continue
		}
		if filter.CatID != nil && event.CatID != *filter.CatID {
			continue
		}
		if filter.EventType != nil && event.EventType != *filter.EventType {
			continue
		}
		if filter.From != nil && event.OccurredAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && event.OccurredAt.After(*filter.To) {
			continue
		}

		matched = append(matched, event)
	}

	// Newest first, recording time as the tie breaker.
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].OccurredAt.Equal(matched[j].OccurredAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}

		return matched[i].OccurredAt.After(matched[j].OccurredAt)
	})

	start := (filter.Page - 1) * filter.Limit
	if start < 0 {
		start = 0
	}
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}

	events := make([]*entity.ToiletEvent, 0, end-start)
	for _, event := range matched[start:end] {
		events = append(events, cloneEvent(event))
	}

	return &repository.EventPage{
		Events:     events,
		TotalCount: int64(len(matched)),
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// UpdateEvent applies a sparse update to the event matching id and owner.
// Nil fields stay untouched.
func (repo *eventRepository) UpdateEvent(ctx context.Context, id uuid.UUID, ownerID string, update repository.EventUpdate) error {
	if !update.HasChanges() {
		return nil
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	event, ok := repo.store.events[id]
	if !ok || !repo.ownsLocked(event.CatID, ownerID) {
		return repository.ErrEventNotFound
	}

	if update.EventType != nil {
		event.EventType = *update.EventType
	}
	if update.OccurredAt != nil {
		event.OccurredAt = *update.OccurredAt
	}
	if update.Note != nil {
		event.Note = clonePtr(update.Note)
	}
	event.UpdatedAt = time.Now().UTC()

	return nil
}

// DeleteEvent removes the event matching id and owner.
func (repo *eventRepository) DeleteEvent(ctx context.Context, id uuid.UUID, ownerID string) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	event, ok := repo.store.events[id]
	if !ok || !repo.ownsLocked(event.CatID, ownerID) {
		return repository.ErrEventNotFound
	}

	delete(repo.store.events, id)

	return nil
}

// AggregateUsageByCat counts urine and feces events per cat within the
// inclusive [from, to] range. Cats without matching events are absent.
func (repo *eventRepository) AggregateUsageByCat(ctx context.Context, ownerID string, from, to time.Time) ([]*entity.CatUsageCount, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	byCat := make(map[uuid.UUID]*entity.CatUsageCount)
	for _, event := range repo.store.events {
		if !repo.ownsLocked(event.CatID, ownerID) {
			continue
		}
		if event.OccurredAt.Before(from) || event.OccurredAt.After(to) {
			continue
		}

		count, ok := byCat[event.CatID]
		if !ok {
			count = &entity.CatUsageCount{CatID: event.CatID}
			byCat[event.CatID] = count
		}

		switch event.EventType {
		case entity.EventTypeUrine:
			count.UrineCount++
		case entity.EventTypeFeces:
			count.FecesCount++
		}
	}

	counts := make([]*entity.CatUsageCount, 0, len(byCat))
	for _, count := range byCat {
		counts = append(counts, count)
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].CatID.String() < counts[j].CatID.String()
	})

	return counts, nil
}

// AggregateUsageByPeriod counts urine and feces events per period bucket
// within the inclusive [from, to] range, optionally narrowed to one cat.
// Bucket keys come from period.Key, so they match the SQL driver's
// date_trunc-based keys by construction.
func (repo *eventRepository) AggregateUsageByPeriod(ctx context.Context, ownerID string, catID *uuid.UUID, granularity period.Granularity, from, to time.Time) ([]*entity.PeriodUsageCount, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	byBucket := make(map[string]*entity.PeriodUsageCount)
	for _, event := range repo.store.events {
		if !repo.ownsLocked(event.CatID, ownerID) {
			continue
		}
		if catID != nil && event.CatID != *catID {
			continue
		}
		if event.OccurredAt.Before(from) || event.OccurredAt.After(to) {
			continue
		}

		key := period.Key(event.OccurredAt, granularity)
		count, ok := byBucket[key]
		if !ok {
			count = &entity.PeriodUsageCount{Period: key}
			byBucket[key] = count
		}

		switch event.EventType {
		case entity.EventTypeUrine:
			count.UrineCount++
		case entity.EventTypeFeces:
			count.FecesCount++
		}
	}

	counts := make([]*entity.PeriodUsageCount, 0, len(byBucket))
	for _, count := range byBucket {
		counts = append(counts, count)
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Period < counts[j].Period
	})

	return counts, nil
}

// ownsLocked reports whether the cat exists and belongs to the owner. The
// caller must hold the store lock.
func (repo *eventRepository) ownsLocked(catID uuid.UUID, ownerID string) bool {
	cat, ok := repo.store.cats[catID]

	return ok && cat.OwnerID == ownerID
}
