package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel mirrors the 'business' table. The unique index on OwnerID
// enforces one listing per account at the storage layer as well.
type BusinessModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CompanyName  string    `gorm:"type:varchar(150);not null"`
	Description  string    `gorm:"type:text"`
	Location     string    `gorm:"type:varchar(255)"`
	Latitude     float64
	Longitude    float64
	Category     string   `gorm:"type:varchar(100);index"`
	ImageRefs    []string `gorm:"serializer:json;type:jsonb"`
	ContactEmail string   `gorm:"type:varchar(255)"`
	ContactPhone string   `gorm:"type:varchar(30)"`
	Website      string   `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "business"
}
