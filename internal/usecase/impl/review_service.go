package impl

import (
	"context"
	"log/slog"

	"bizdir/internal/domain/authz"
	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	"bizdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	fx.In

	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateReview posts a review on an extant listing. The author's current
// profile image is snapshotted onto the review at posting time; later
// profile edits do not rewrite old reviews.
func (srv *reviewService) CreateReview(ctx context.Context, actor *entity.User, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if actor == nil {
		return nil, domainerrors.ErrLoginRequired
	}

	if input.BusinessID == nil {
		return nil, domainerrors.ErrValidationMissing.WithDetails("business_id is required")
	}

	srv.logger.Info("Creating review", "businessID", *input.BusinessID, "authorID", actor.ID)

	review := &entity.Review{
		BusinessID:     input.BusinessID,
		AuthorID:       actor.ID,
		AuthorImageRef: actor.Profile.ImageRef,
		Body:           input.Body,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. The reviewed listing must exist
		if _, err := repoFactory.BusinessRepo().FindByID(ctx, *input.BusinessID); err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return errors.Wrap(domainerrors.ErrBusinessNotFound, "reviewed listing missing")
			}

			return errors.Wrap(err, "failed to find business")
		}

		// 2. Create the review
		if err := repoFactory.ReviewRepo().Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})
	if err != nil {
		return nil, storeErr(err, "failed to create review")
	}

	return review, nil
}

// ListByBusiness retrieves the reviews on an extant listing, newest first.
func (srv *reviewService) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Review, error) {
	var reviews []*entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.BusinessRepo().FindByID(ctx, businessID); err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return errors.Wrap(domainerrors.ErrBusinessNotFound, "no such listing")
			}

			return errors.Wrap(err, "failed to find business")
		}

		found, err := repoFactory.ReviewRepo().FindByBusiness(ctx, businessID)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}
		reviews = found

		return nil
	})
	if err != nil {
		return nil, storeErr(err, "failed to list reviews")
	}

	return reviews, nil
}

// UpdateReview merges the supplied fields into the stored review. Only the
// author passes the guard.
func (srv *reviewService) UpdateReview(ctx context.Context, actor *entity.User, reviewID uuid.UUID, input *usecase.UpdateReviewInput) error {
	srv.logger.Info("Updating review", "reviewID", reviewID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		// 1. Find the target review
		target, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrReviewNotFound, "target review missing")
			}

			return errors.Wrap(err, "failed to find review")
		}

		// 2. Authorize the edit
		if err := guardErr(authz.Authorize(actor, authz.ActionEditReview, target)); err != nil {
			return err
		}

		// 3. Merge the supplied fields only
		if err := reviewRepo.UpdateFields(ctx, reviewID, repository.ReviewUpdate{Body: input.Body}); err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrReviewNotFound, "target review missing")
			}

			return errors.Wrap(err, "failed to update review")
		}

		return nil
	})

	return storeErr(err, "failed to update review")
}

// DeleteReview removes a single review. Only the author passes the guard;
// deleting an already-deleted review reports not found.
func (srv *reviewService) DeleteReview(ctx context.Context, actor *entity.User, reviewID uuid.UUID) error {
	srv.logger.Info("Deleting review", "reviewID", reviewID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		target, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrReviewNotFound, "target review missing")
			}

			return errors.Wrap(err, "failed to find review")
		}

		if err := guardErr(authz.Authorize(actor, authz.ActionDeleteReview, target)); err != nil {
			return err
		}

		if err := reviewRepo.DeleteByID(ctx, reviewID); err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrReviewNotFound, "target review missing")
			}

			return errors.Wrap(err, "failed to delete review")
		}

		return nil
	})

	return storeErr(err, "failed to delete review")
}
