package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ToiletEventModel is the GORM-specific struct for the 'toilet_events' table.
// It represents a single urine or feces event recorded for a cat.
type ToiletEventModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CatID      uuid.UUID `gorm:"type:uuid;not null;index"`
	EventType  string    `gorm:"type:varchar(10);not null;index"`
	OccurredAt time.Time `gorm:"not null;index"`
	Note       *string   `gorm:"type:varchar(500)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ToiletEventModel) TableName() string {
	return "toilet_events"
}
