package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CascadeUsecase removes an owning record together with its dependents.
// Steps run dependents-first and are individually idempotent; there is no
// cross-step transaction, so a mid-cascade failure leaves at worst an
// orphan-free business or account, never a review or deal pointing at a
// missing owner. Partial failure is reported, completed steps stay applied.
type CascadeUsecase interface {
	// DeleteBusinessCascade removes a listing's reviews, then its deals,
	// then the listing itself. A second call for the same id reports the
	// not-found outcome rather than an error.
	DeleteBusinessCascade(ctx context.Context, businessID uuid.UUID) (*CascadeReport, error)

	// DeleteAccountCascade removes the account's owned listing (via
	// DeleteBusinessCascade, when one exists), the account's authored
	// reviews, and finally the account itself.
	DeleteAccountCascade(ctx context.Context, userID uuid.UUID) (*CascadeReport, error)
}

// CascadeReport records what a cascade actually removed, for logging and
// for surfacing partial completion to the caller.
type CascadeReport struct {
	ReviewsDeleted  int64 `json:"reviews_deleted"`
	DealsDeleted    int64 `json:"deals_deleted"`
	BusinessDeleted bool  `json:"business_deleted"`
	AccountDeleted  bool  `json:"account_deleted"`
}
