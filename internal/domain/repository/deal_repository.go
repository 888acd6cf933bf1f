package repository

import (
	"context"
	"errors"
	"time"

	"bizdir/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDealNotFound is returned when a deal is not found.
var ErrDealNotFound = errors.New("deal not found")

// DealUpdate is a partial update of a deal. Nil fields keep their stored
// value.
type DealUpdate struct {
	Text      *string
	StartsAt  *time.Time
	ExpiresAt *time.Time
	ImageRef  *string
}

// DealRepository defines the standard operations for deal persistence.
type DealRepository interface {
	// FindByID retrieves a single deal by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error)

	// FindByBusiness retrieves all deals on a listing, newest first.
	FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Deal, error)

	// Create persists a new deal and fills in its generated ID.
	Create(ctx context.Context, deal *entity.Deal) error

	// UpdateFields merges the supplied fields into the stored record.
	// Returns ErrDealNotFound when no record matched.
	UpdateFields(ctx context.Context, id uuid.UUID, update DealUpdate) error

	// DeleteByID removes the deal if it exists. Returns ErrDealNotFound
	// when there was nothing to delete.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// DeleteByBusiness removes every deal on a listing and reports how many
	// rows went away. Deleting zero rows is not an error.
	DeleteByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error)
}
