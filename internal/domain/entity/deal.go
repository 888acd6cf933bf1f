package entity

import (
	"time"

	"github.com/google/uuid"
)

// Deal is a time-bounded promotion attached to a listing. Only the listing
// owner may create or mutate deals, so ownership checks always resolve the
// deal's listing first.
type Deal struct {
	ID         uuid.UUID
	BusinessID uuid.UUID // The listing this promotion belongs to.
	Text       string
	StartsAt   time.Time
	ExpiresAt  time.Time
	ImageRef   string // Opaque encoded image blob, empty when none was uploaded.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Active reports whether the deal is currently running.
func (d *Deal) Active(now time.Time) bool {
	return !now.Before(d.StartsAt) && now.Before(d.ExpiresAt)
}
