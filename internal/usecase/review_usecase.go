package usecase

import (
	"context"

	"bizdir/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase defines the review-related business operations. Any
// authenticated account may review any extant listing; only the author may
// edit or delete a review afterwards.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, actor *entity.User, input *CreateReviewInput) (*entity.Review, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Review, error)
	UpdateReview(ctx context.Context, actor *entity.User, reviewID uuid.UUID, input *UpdateReviewInput) error
	DeleteReview(ctx context.Context, actor *entity.User, reviewID uuid.UUID) error
}

// CreateReviewInput defines the data required to post a review. BusinessID
// is optional in the type to mirror the stored shape, but creation rejects
// an absent listing reference.
type CreateReviewInput struct {
	BusinessID *uuid.UUID `json:"business_id" validate:"required"`
	Body       string     `json:"body" validate:"required"`
}

// UpdateReviewInput is a partial review edit.
type UpdateReviewInput struct {
	Body *string `json:"body,omitempty"`
}
