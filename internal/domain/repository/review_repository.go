package repository

import (
	"context"
	"errors"

	"bizdir/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewUpdate is a partial update of a review. Nil fields keep their stored
// value.
type ReviewUpdate struct {
	Body *string
}

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// FindByID retrieves a single review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByBusiness retrieves all reviews on a listing, newest first.
	FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Review, error)

	// FindByAuthor retrieves all reviews written by an account, newest first.
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Review, error)

	// Create persists a new review and fills in its generated ID.
	Create(ctx context.Context, review *entity.Review) error

	// UpdateFields merges the supplied fields into the stored record.
	// Returns ErrReviewNotFound when no record matched.
	UpdateFields(ctx context.Context, id uuid.UUID, update ReviewUpdate) error

	// DeleteByID removes the review if it exists. Returns ErrReviewNotFound
	// when there was nothing to delete.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// DeleteByBusiness removes every review on a listing and reports how
	// many rows went away. Deleting zero rows is not an error; the cascade
	// relies on that for idempotence.
	DeleteByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error)

	// DeleteByAuthor removes every review written by an account, so a
	// deleted account leaves no reviews pointing back at it.
	DeleteByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error)
}
