package model

import (
	"time"

	"github.com/google/uuid"
)

// DealModel mirrors the 'deals' table.
type DealModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`
	Text       string    `gorm:"type:text;not null"`
	StartsAt   time.Time
	ExpiresAt  time.Time `gorm:"index"`
	ImageRef   string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DealModel) TableName() string {
	return "deals"
}
