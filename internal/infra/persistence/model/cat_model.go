package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatModel is the GORM-specific struct for the 'cats' table.
// It represents a cat whose litter box usage is tracked.
type CatModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID   string     `gorm:"type:varchar(255);not null;index"`
	Name      string     `gorm:"type:varchar(50);not null"`
	BirthDate *time.Time `gorm:"type:date"`
	Breed     *string    `gorm:"type:varchar(50)"`
	Weight    *float64   `gorm:"type:decimal(5,2)"`
	ImageURL  *string    `gorm:"type:varchar(512)"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CatModel) TableName() string {
	return "cats"
}
