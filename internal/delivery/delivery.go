// Package delivery defines the entry points that expose the application to
// the outside world.
package delivery

import "context"

// Delivery is a long-running server collected into the fx "deliveries" group
// and started from main.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
