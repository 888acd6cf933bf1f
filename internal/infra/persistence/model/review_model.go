package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. BusinessID is nullable: absence
// is an explicit NULL, never a sentinel value.
type ReviewModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID     *uuid.UUID `gorm:"type:uuid;index"`
	AuthorID       uuid.UUID  `gorm:"type:uuid;index;not null"`
	AuthorImageRef string     `gorm:"type:text"`
	Body           string     `gorm:"type:text;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
