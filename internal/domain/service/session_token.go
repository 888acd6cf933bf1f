package service

import (
	"time"

	"github.com/google/uuid"
)

// SessionTokenService mints and validates the opaque session token handed to
// clients at login. The token carries nothing but the account ID and an
// expiry; the identity resolver re-reads the account on every request, so a
// deleted account goes anonymous immediately.
type SessionTokenService interface {
	// Issue creates a signed session token for the given account.
	Issue(userID uuid.UUID) (string, error)

	// Subject validates a token and returns the account ID it was issued
	// for. Invalid or expired tokens return an error.
	Subject(token string) (uuid.UUID, error)

	// TTL returns the configured session lifetime.
	TTL() time.Duration
}
