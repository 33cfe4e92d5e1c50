// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"catlog/internal/domain/entity"
	"catlog/internal/domain/period"
	"catlog/internal/domain/repository"
	"catlog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements the repository.EventRepository interface.
// Ownership of events is transitive through the cat, so reads join against
// cats and mutations restrict cat_id to the owner's cats.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// CreateEvent persists a new toilet event.
func (repo *eventRepository) CreateEvent(ctx context.Context, event *entity.ToiletEvent) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			// The referenced cat was removed between the ownership check
			// and the insert.
			return repository.ErrCatNotFound
		}

		return errors.Wrap(err, "failed to create toilet event")
	}

	// Update the entity with generated values
	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// FindEventByID retrieves an event by its ID, scoped to the owner of the cat
// it belongs to.
func (repo *eventRepository) FindEventByID(ctx context.Context, id uuid.UUID, ownerID string) (*entity.ToiletEvent, error) {
	var eventM model.ToiletEventModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN cats ON cats.id = toilet_events.cat_id AND cats.deleted_at IS NULL").
		Where("toilet_events.id = ? AND cats.owner_id = ?", id, ownerID).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find toilet event by ID")
	}

	return toEventDomain(&eventM), nil
}

// FindEventsWithFilter retrieves one page of events matching the filter,
// newest first, together with the unpaginated total.
func (repo *eventRepository) FindEventsWithFilter(ctx context.Context, filter repository.EventFilter) (*repository.EventPage, error) {
	var total int64
	if err := repo.filteredEvents(ctx, filter).Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count toilet events")
	}

	var eventModels []*model.ToiletEventModel
	if err := repo.filteredEvents(ctx, filter).
		Order("toilet_events.occurred_at DESC, toilet_events.created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find toilet events")
	}

	events := make([]*entity.ToiletEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return &repository.EventPage{
		Events:     events,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// filteredEvents builds the joined, filtered chain for a history query.
// Count and Find each need a fresh chain, so callers invoke this once per
// finisher instead of reusing one statement.
func (repo *eventRepository) filteredEvents(ctx context.Context, filter repository.EventFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).
		Model(&model.ToiletEventModel{}).
		Joins("JOIN cats ON cats.id = toilet_events.cat_id AND cats.deleted_at IS NULL").
		Where("cats.owner_id = ?", filter.OwnerID)

	if filter.CatID != nil {
		query = query.Where("toilet_events.cat_id = ?", *filter.CatID)
	}
	if filter.EventType != nil {
		query = query.Where("toilet_events.event_type = ?", filter.EventType.String())
	}
	if filter.From != nil {
		query = query.Where("toilet_events.occurred_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("toilet_events.occurred_at <= ?", *filter.To)
	}

	return query
}

// UpdateEvent applies a sparse update to the event matching id and owner.
// UPDATE cannot join, so ownership is enforced with a subquery over the
// owner's cats.
func (repo *eventRepository) UpdateEvent(ctx context.Context, id uuid.UUID, ownerID string, update repository.EventUpdate) error {
	updates := map[string]any{}
	if update.EventType != nil {
		updates["event_type"] = update.EventType.String()
	}
	if update.OccurredAt != nil {
		updates["occurred_at"] = *update.OccurredAt
	}
	if update.Note != nil {
		updates["note"] = *update.Note
	}

	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ToiletEventModel{}).
		Where("id = ?", id).
		Where("cat_id IN (?)", repo.ownedCatIDs(ctx, ownerID)).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update toilet event")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// DeleteEvent removes the event matching id and owner (soft delete).
func (repo *eventRepository) DeleteEvent(ctx context.Context, id uuid.UUID, ownerID string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Where("cat_id IN (?)", repo.ownedCatIDs(ctx, ownerID)).
		Delete(&model.ToiletEventModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete toilet event")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// AggregateUsageByCat counts urine and feces events per cat within the
// inclusive [from, to] range. The grouping runs in PostgreSQL so the result
// stays bounded by the number of cats, not the number of events.
func (repo *eventRepository) AggregateUsageByCat(ctx context.Context, ownerID string, from, to time.Time) ([]*entity.CatUsageCount, error) {
	var rows []catUsageRow

	if err := repo.db.WithContext(ctx).
		Model(&model.ToiletEventModel{}).
		Select("toilet_events.cat_id AS cat_id, "+
			"COUNT(*) FILTER (WHERE toilet_events.event_type = 'urine') AS urine_count, "+
			"COUNT(*) FILTER (WHERE toilet_events.event_type = 'feces') AS feces_count").
		Joins("JOIN cats ON cats.id = toilet_events.cat_id AND cats.deleted_at IS NULL").
		Where("cats.owner_id = ?", ownerID).
		Where("toilet_events.occurred_at BETWEEN ? AND ?", from, to).
		Group("toilet_events.cat_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate usage by cat")
	}

	counts := make([]*entity.CatUsageCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, &entity.CatUsageCount{
			CatID:      row.CatID,
			UrineCount: row.UrineCount,
			FecesCount: row.FecesCount,
		})
	}

	return counts, nil
}

// AggregateUsageByPeriod counts urine and feces events per period bucket
// within the inclusive [from, to] range, optionally narrowed to one cat.
// Buckets are sorted ascending and their keys match period.Key for the same
// granularity.
func (repo *eventRepository) AggregateUsageByPeriod(ctx context.Context, ownerID string, catID *uuid.UUID, granularity period.Granularity, from, to time.Time) ([]*entity.PeriodUsageCount, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ToiletEventModel{}).
		Select(periodBucketExpr(granularity)+" AS bucket, "+
			"COUNT(*) FILTER (WHERE toilet_events.event_type = 'urine') AS urine_count, "+
			"COUNT(*) FILTER (WHERE toilet_events.event_type = 'feces') AS feces_count").
		Joins("JOIN cats ON cats.id = toilet_events.cat_id AND cats.deleted_at IS NULL").
		Where("cats.owner_id = ?", ownerID).
		Where("toilet_events.occurred_at BETWEEN ? AND ?", from, to)

	if catID != nil {
		query = query.Where("toilet_events.cat_id = ?", *catID)
	}

	var rows []periodUsageRow
	if err := query.
		Group("bucket").
		Order("bucket ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate usage by period")
	}

	counts := make([]*entity.PeriodUsageCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, &entity.PeriodUsageCount{
			Period:     row.Bucket,
			UrineCount: row.UrineCount,
			FecesCount: row.FecesCount,
		})
	}

	return counts, nil
}

// ownedCatIDs returns a subquery selecting the IDs of the owner's cats.
// Soft-deleted cats are excluded by the model's delete scope.
func (repo *eventRepository) ownedCatIDs(ctx context.Context, ownerID string) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.CatModel{}).
		Select("id").
		Where("owner_id = ?", ownerID)
}

// periodBucketExpr returns the SQL expression producing the bucket key for a
// granularity. Each expression must yield the same key period.Key derives in
// Go: date_trunc('week', ...) starts weeks on Monday, and every bucket is
// taken from the UTC calendar date of occurred_at.
func periodBucketExpr(granularity period.Granularity) string {
	switch granularity {
	case period.Weekly:
		return "to_char(date_trunc('week', toilet_events.occurred_at AT TIME ZONE 'UTC'), 'YYYY-MM-DD')"
	case period.Monthly:
		return "to_char(date_trunc('month', toilet_events.occurred_at AT TIME ZONE 'UTC'), 'YYYY-MM')"
	default:
		return "to_char(date_trunc('day', toilet_events.occurred_at AT TIME ZONE 'UTC'), 'YYYY-MM-DD')"
	}
}

// catUsageRow is the scan target for the per-cat aggregation.
type catUsageRow struct {
	CatID      uuid.UUID
	UrineCount int64
	FecesCount int64
}

// periodUsageRow is the scan target for the per-period aggregation.
type periodUsageRow struct {
	Bucket     string
	UrineCount int64
	FecesCount int64
}

// --- Mapper Functions ---

// toEventDomain converts a GORM ToiletEventModel to a domain ToiletEvent entity.
func toEventDomain(data *model.ToiletEventModel) *entity.ToiletEvent {
	if data == nil {
		return nil
	}

	return &entity.ToiletEvent{
		ID:         data.ID,
		CatID:      data.CatID,
		EventType:  entity.EventType(data.EventType),
		OccurredAt: data.OccurredAt,
		Note:       data.Note,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromEventDomain converts a domain ToiletEvent entity to a GORM ToiletEventModel.
func fromEventDomain(data *entity.ToiletEvent) *model.ToiletEventModel {
	if data == nil {
		return nil
	}

	return &model.ToiletEventModel{
		ID:         data.ID,
		CatID:      data.CatID,
		EventType:  data.EventType.String(),
		OccurredAt: data.OccurredAt,
		Note:       data.Note,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
