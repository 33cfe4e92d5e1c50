package repository

import (
	"context"
	"time"

	"catlog/internal/domain/entity"
	"catlog/internal/domain/period"
	"catlog/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for toilet event persistence.
var (
	// ErrEventNotFound is returned by mutations when no event matches the id and owner.
	ErrEventNotFound = errors.New("toilet event not found")
)

// EventUpdate carries the fields of a sparse event update. Nil fields are
// left unchanged.
type EventUpdate struct {
	EventType  *entity.EventType
	OccurredAt *time.Time
	Note       *string
}

// HasChanges reports whether the update sets any field.
func (u EventUpdate) HasChanges() bool {
	return u.EventType != nil || u.OccurredAt != nil || u.Note != nil
}

// EventFilter narrows and paginates a history query. Optional fields are nil
// when not requested. Page and Limit are expected to be normalized by the
// caller (page >= 1, 1 <= limit <= 100). Time bounds are inclusive.
type EventFilter struct {
	OwnerID   string
	CatID     *uuid.UUID
	EventType *entity.EventType
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
}

// EventPage is one page of a filtered history query, ordered by occurrence
// time descending (newest first).
type EventPage struct {
	Events     []*entity.ToiletEvent
	TotalCount int64
	Page       int
	Limit      int
}

// TotalPages returns the number of pages covering TotalCount at the page
// size: ceil(TotalCount/Limit), 0 when there are no events.
func (p EventPage) TotalPages() int64 {
	if p.TotalCount == 0 || p.Limit <= 0 {
		return 0
	}

	return (p.TotalCount + int64(p.Limit) - 1) / int64(p.Limit)
}

// EventRepository defines the interface for toilet event database operations.
// Ownership is transitive through the cat: every operation joins against the
// cat's owner, and an event under someone else's cat is indistinguishable
// from a missing event.
type EventRepository interface {
	// CreateEvent persists a new toilet event.
	CreateEvent(ctx context.Context, event *entity.ToiletEvent) error

	// FindEventByID retrieves an event by id for the given owner. Returns
	// (nil, nil) when no matching event exists.
	FindEventByID(ctx context.Context, id uuid.UUID, ownerID string) (*entity.ToiletEvent, error)

	// FindEventsWithFilter retrieves one page of events matching the filter,
	// newest first, together with the unpaginated total.
	FindEventsWithFilter(ctx context.Context, filter EventFilter) (*EventPage, error)

	// UpdateEvent applies a sparse update to the event matching id and owner.
	// Returns ErrEventNotFound when no row matches.
	UpdateEvent(ctx context.Context, id uuid.UUID, ownerID string, update EventUpdate) error

	// DeleteEvent removes the event matching id and owner. Returns
	// ErrEventNotFound when no row matches.
	DeleteEvent(ctx context.Context, id uuid.UUID, ownerID string) error

	// AggregateUsageByCat counts urine and feces events per cat within the
	// inclusive [from, to] range. Cats without matching events are absent
	// from the result. The grouping runs in the storage engine so counts
	// stay correct regardless of event volume.
	AggregateUsageByCat(ctx context.Context, ownerID string, from, to time.Time) ([]*entity.CatUsageCount, error)

	// AggregateUsageByPeriod counts urine and feces events per period bucket
	// within the inclusive [from, to] range, optionally narrowed to one cat,
	// sorted ascending by bucket key. Buckets without events are absent.
	// Bucket keys match period.Key for the same granularity.
	AggregateUsageByPeriod(ctx context.Context, ownerID string, catID *uuid.UUID, granularity period.Granularity, from, to time.Time) ([]*entity.PeriodUsageCount, error)
}
