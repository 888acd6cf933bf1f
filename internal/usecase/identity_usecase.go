// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bizdir/internal/domain/entity"
)

// IdentityUsecase resolves a session token to the current account. It is the
// first step of every protected operation: the returned *entity.User is the
// explicit actor passed to the ownership guard, never ambient state.
type IdentityUsecase interface {
	// Resolve maps a session token to the account it names. An empty,
	// invalid or expired token, or a token for an account that no longer
	// exists, resolves to (nil, nil) — anonymous, not an error. Errors are
	// reserved for store failures.
	Resolve(ctx context.Context, token string) (*entity.User, error)
}
