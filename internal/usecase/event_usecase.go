package usecase

import (
	"context"
	"time"

	"catlog/internal/domain/entity"

	"github.com/google/uuid"
)

// AddEventInput represents the input for recording a toilet event
type AddEventInput struct {
	CatID      uuid.UUID        `json:"cat_id" validate:"required"`
	EventType  entity.EventType `json:"event_type" validate:"required,oneof=urine feces"`
	OccurredAt *time.Time       `json:"occurred_at,omitempty"`
	Note       *string          `json:"note,omitempty" validate:"omitnil,max=500"`
}

// UpdateEventInput represents the input for updating an existing event.
// Nil fields are left unchanged.
type UpdateEventInput struct {
	EventType  *entity.EventType `json:"event_type,omitempty" validate:"omitnil,oneof=urine feces"`
	OccurredAt *time.Time        `json:"occurred_at,omitempty"`
	Note       *string           `json:"note,omitempty" validate:"omitnil,max=500"`
}

// HistoryQuery narrows and paginates the event history. Nil fields are not
// applied. Page defaults to 1 and Limit to 20 when omitted.
type HistoryQuery struct {
	CatID     *uuid.UUID        `json:"cat_id,omitempty" query:"catId"`
	EventType *entity.EventType `json:"event_type,omitempty" query:"eventType" validate:"omitnil,oneof=urine feces"`
	From      *time.Time        `json:"from,omitempty" query:"from"`
	To        *time.Time        `json:"to,omitempty" query:"to"`
	Page      *int              `json:"page,omitempty" query:"page" validate:"omitnil,min=1"`
	Limit     *int              `json:"limit,omitempty" query:"limit" validate:"omitnil,min=1,max=100"`
}

// HistoryOutput is one page of event history, newest first.
type HistoryOutput struct {
	Events     []*entity.ToiletEvent `json:"events"`
	TotalCount int64                 `json:"total_count"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalPages int64                 `json:"total_pages"`
}

// EventUsecase defines the interface for toilet event use cases
type EventUsecase interface {
	// AddEvent records a toilet event for one of the owner's cats
	AddEvent(ctx context.Context, ownerID string, input *AddEventInput) (*entity.ToiletEvent, error)

	// GetEvent retrieves a single event recorded for one of the owner's cats
	GetEvent(ctx context.Context, ownerID string, eventID uuid.UUID) (*entity.ToiletEvent, error)

	// GetHistory retrieves one page of filtered event history
	GetHistory(ctx context.Context, ownerID string, query *HistoryQuery) (*HistoryOutput, error)

	// UpdateEvent applies a sparse update to one of the owner's events
	UpdateEvent(ctx context.Context, ownerID string, eventID uuid.UUID, input *UpdateEventInput) (*entity.ToiletEvent, error)

	// DeleteEvent removes one of the owner's events. Refused until the
	// caller confirms the deletion explicitly.
	DeleteEvent(ctx context.Context, ownerID string, eventID uuid.UUID, confirmed bool) error
}
