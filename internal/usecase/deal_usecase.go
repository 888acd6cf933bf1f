package usecase

import (
	"context"
	"time"

	"bizdir/internal/domain/entity"

	"github.com/google/uuid"
)

// DealUsecase defines the deal-related business operations. Every mutation
// is authorized against the owning listing, resolved fresh per call.
type DealUsecase interface {
	CreateDeal(ctx context.Context, actor *entity.User, input *CreateDealInput) (*entity.Deal, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID, activeOnly bool) ([]*entity.Deal, error)
	UpdateDeal(ctx context.Context, actor *entity.User, dealID uuid.UUID, input *UpdateDealInput) error
	DeleteDeal(ctx context.Context, actor *entity.User, dealID uuid.UUID) error
}

// CreateDealInput defines the data required to post a deal.
type CreateDealInput struct {
	BusinessID uuid.UUID `json:"business_id" validate:"required"`
	Text       string    `json:"text" validate:"required"`
	StartsAt   time.Time `json:"starts_at" validate:"required"`
	ExpiresAt  time.Time `json:"expires_at" validate:"required,gtfield=StartsAt"`
	ImageRef   string    `json:"image_ref"`
}

// UpdateDealInput is a partial deal edit. Nil fields keep their stored value.
type UpdateDealInput struct {
	Text      *string    `json:"text,omitempty"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	ImageRef  *string    `json:"image_ref,omitempty"`
}
