// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer: typed accessors per collection, explicit
// not-found sentinels on misses, and merge-only partial updates.
package repository

import (
	"context"
	"errors"

	"bizdir/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserUpdate is a partial update of an account. Nil fields keep their stored
// value; this is the single place the "use the old value when blank" policy
// lives, instead of being re-implemented per route.
type UserUpdate struct {
	Email    *string
	Name     *string
	Postcode *string
	Bio      *string
	Phone    *string
	ImageRef *string
}

// UserRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete
// implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their case-normalized username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by their case-normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity and fills in its generated ID.
	Create(ctx context.Context, user *entity.User) error

	// UpdateFields merges the supplied fields into the stored record,
	// leaving everything else untouched. Returns ErrUserNotFound when
	// no record matched.
	UpdateFields(ctx context.Context, id uuid.UUID, update UserUpdate) error

	// DeleteByID removes the user if it exists. Returns ErrUserNotFound
	// when there was nothing to delete.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
