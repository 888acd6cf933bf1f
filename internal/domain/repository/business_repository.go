package repository

import (
	"context"
	"errors"

	"bizdir/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Domain-specific errors for listing persistence.
var (
	// ErrBusinessNotFound is returned when a listing is not found.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrBusinessOwnerTaken is returned when the owner already has a listing.
	ErrBusinessOwnerTaken = errors.New("owner already has a business")
)

// BusinessUpdate is a partial update of a listing. Nil fields keep their
// stored value.
type BusinessUpdate struct {
	CompanyName  *string
	Description  *string
	Location     *string
	Coordinate   *orb.Point
	Category     *string
	ImageRefs    *[]string
	ContactEmail *string
	ContactPhone *string
	Website      *string
}

// BusinessRepository defines the standard operations for listing persistence.
type BusinessRepository interface {
	// FindByID retrieves a single listing by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindByOwner retrieves the listing owned by the given account.
	// Returns ErrBusinessNotFound when the account owns none.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error)

	// List retrieves listings for the public directory, optionally
	// filtered by category. An empty category means all listings.
	List(ctx context.Context, category string) ([]*entity.Business, error)

	// Create persists a new listing and fills in its generated ID.
	// Returns ErrBusinessOwnerTaken when the owner already has one.
	Create(ctx context.Context, business *entity.Business) error

	// UpdateFields merges the supplied fields into the stored record.
	// Returns ErrBusinessNotFound when no record matched.
	UpdateFields(ctx context.Context, id uuid.UUID, update BusinessUpdate) error

	// DeleteByID removes the listing if it exists. Returns
	// ErrBusinessNotFound when there was nothing to delete.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
