package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Business is a directory listing. Exactly one listing per owner is
// enforced at creation time and by a unique index on the owner column.
type Business struct {
	ID          uuid.UUID // The unique ID of the listing.
	OwnerID     uuid.UUID // The account that created, and may mutate, the listing.
	CompanyName string
	Description string
	Location    string    // Free-text location, as entered by the owner.
	Coordinate  orb.Point // Geocoded from Location; display only, zero when geocoding failed.
	Category    string
	ImageRefs   []string // Opaque encoded image blobs.
	Contact     Contact
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Contact holds the public contact details of a listing.
type Contact struct {
	Email   string
	Phone   string
	Website string
}

// OwnedBy on a listing also gates its deals: deal mutations are
// authorized against the owning listing, never the deal row itself.
func (b *Business) OwnedBy() uuid.UUID {
	return b.OwnerID
}
