package impl

import (
	"context"
	"time"

	"catlog/internal/domain/entity"
	domainerrors "catlog/internal/domain/errors"
	"catlog/internal/domain/repository"
	"catlog/internal/errors"
	"catlog/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultHistoryPage  = 1
	defaultHistoryLimit = 20
)

type eventService struct {
	catRepo   repository.CatRepository
	eventRepo repository.EventRepository
}

// NewEventService creates a new toilet event service instance
func NewEventService(catRepo repository.CatRepository, eventRepo repository.EventRepository) usecase.EventUsecase {
	return &eventService{
		catRepo:   catRepo,
		eventRepo: eventRepo,
	}
}

// AddEvent records a toilet event for one of the owner's cats
func (s *eventService) AddEvent(ctx context.Context, ownerID string, input *usecase.AddEventInput) (*entity.ToiletEvent, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	// The referenced cat must exist and belong to the owner before
	// anything is written.
	cat, err := s.catRepo.FindCatByID(ctx, input.CatID, ownerID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find cat")
	}
	if cat == nil {
		return nil, domainerrors.NewNotFoundError("cat", input.CatID.String())
	}

	now := time.Now().UTC()
	occurredAt := now
	if input.OccurredAt != nil {
		occurredAt = input.OccurredAt.UTC()
	}

	event := &entity.ToiletEvent{
		ID:         uuid.New(),
		CatID:      input.CatID,
		EventType:  input.EventType,
		OccurredAt: occurredAt,
		Note:       input.Note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.eventRepo.CreateEvent(ctx, event); err != nil {
		// The cat may have been deleted after the check above; the storage
		// layer reports that as a missing cat.
		if errors.Is(err, repository.ErrCatNotFound) {
			return nil, domainerrors.NewNotFoundError("cat", input.CatID.String())
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "create event")
	}

	return event, nil
}

// GetEvent retrieves a single event recorded for one of the owner's cats
func (s *eventService) GetEvent(ctx context.Context, ownerID string, eventID uuid.UUID) (*entity.ToiletEvent, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID, ownerID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find event")
	}
	if event == nil {
		return nil, domainerrors.NewNotFoundError("event", eventID.String())
	}

	return event, nil
}

// GetHistory retrieves one page of filtered event history
func (s *eventService) GetHistory(ctx context.Context, ownerID string, query *usecase.HistoryQuery) (*usecase.HistoryOutput, error) {
	if err := validateInput(query); err != nil {
		return nil, err
	}

	if query.From != nil && query.To != nil && query.From.After(*query.To) {
		return nil, domainerrors.NewValidationError("from", "from must not be after to")
	}

	page := defaultHistoryPage
	if query.Page != nil {
		page = *query.Page
	}
	limit := defaultHistoryLimit
	if query.Limit != nil {
		limit = *query.Limit
	}

	filter := repository.EventFilter{
		OwnerID:   ownerID,
		CatID:     query.CatID,
		EventType: query.EventType,
		From:      query.From,
		To:        query.To,
		Page:      page,
		Limit:     limit,
	}

	result, err := s.eventRepo.FindEventsWithFilter(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find events")
	}

	return &usecase.HistoryOutput{
		Events:     result.Events,
		TotalCount: result.TotalCount,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages(),
	}, nil
}

// UpdateEvent applies a sparse update to one of the owner's events
func (s *eventService) UpdateEvent(ctx context.Context, ownerID string, eventID uuid.UUID, input *usecase.UpdateEventInput) (*entity.ToiletEvent, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	update := repository.EventUpdate{
		EventType:  input.EventType,
		OccurredAt: input.OccurredAt,
		Note:       input.Note,
	}

	if update.HasChanges() {
		if err := s.eventRepo.UpdateEvent(ctx, eventID, ownerID, update); err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return nil, domainerrors.NewNotFoundError("event", eventID.String())
			}

			return nil, domainerrors.NewDatabaseExecuteError(err, "update event")
		}
	}

	return s.GetEvent(ctx, ownerID, eventID)
}

// DeleteEvent removes one of the owner's events after explicit confirmation
func (s *eventService) DeleteEvent(ctx context.Context, ownerID string, eventID uuid.UUID, confirmed bool) error {
	if !confirmed {
		return domainerrors.ErrConfirmationRequired
	}

	if err := s.eventRepo.DeleteEvent(ctx, eventID, ownerID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.NewNotFoundError("event", eventID.String())
		}

		return domainerrors.NewDatabaseExecuteError(err, "delete event")
	}

	return nil
}
