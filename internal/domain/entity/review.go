package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is free-text feedback an authenticated user leaves on a listing.
// BusinessID is a pointer rather than a sentinel value: nil means the review
// targets no listing, which creation rejects but old data may still carry.
type Review struct {
	ID             uuid.UUID
	BusinessID     *uuid.UUID // The reviewed listing; nil when absent.
	AuthorID       uuid.UUID  // The account that wrote, and may mutate, the review.
	AuthorImageRef string     // Snapshot of the author's profile image at posting time.
	Body           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OwnedBy identifies the review's author.
func (r *Review) OwnedBy() uuid.UUID {
	return r.AuthorID
}
