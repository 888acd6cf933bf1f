package service

import (
	"context"

	"github.com/paulmach/orb"
)

// Geocoder translates a free-text location into a coordinate. The result is
// display-only: a failed or empty lookup must never fail the write that
// requested it.
type Geocoder interface {
	// Geocode resolves location text to a lon/lat point.
	Geocode(ctx context.Context, location string) (orb.Point, error)
}
