// Package model contains the GORM persistence models mirroring the
// directory's collections: users, business, reviews, deals.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). The profile sub-record is flattened into the row so a
// partial update is always a single-table merge.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Name         string    `gorm:"type:varchar(100)"`
	Postcode     string    `gorm:"type:varchar(20)"`
	Bio          string    `gorm:"type:text"`
	Phone        string    `gorm:"type:varchar(30)"`
	ImageRef     string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
