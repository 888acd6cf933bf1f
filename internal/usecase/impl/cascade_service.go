package impl

import (
	"context"
	"log/slog"

	"bizdir/internal/domain/repository"
	"bizdir/internal/errors"
	"bizdir/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// cascadeService implements the CascadeUsecase interface. It deliberately
// takes repositories directly instead of the transaction manager: each step
// is an idempotent bulk delete ordered dependents-first, and a step that
// succeeded must stay applied even when a later step fails. Re-running the
// cascade resumes where it stopped.
type cascadeService struct {
	fx.In

	userRepo     repository.UserRepository
	businessRepo repository.BusinessRepository
	reviewRepo   repository.ReviewRepository
	dealRepo     repository.DealRepository
	logger       *slog.Logger
}

// NewCascadeService is the constructor for cascadeService.
func NewCascadeService(
	userRepo repository.UserRepository,
	businessRepo repository.BusinessRepository,
	reviewRepo repository.ReviewRepository,
	dealRepo repository.DealRepository,
	logger *slog.Logger,
) usecase.CascadeUsecase {
	return &cascadeService{
		userRepo:     userRepo,
		businessRepo: businessRepo,
		reviewRepo:   reviewRepo,
		dealRepo:     dealRepo,
		logger:       logger,
	}
}

// DeleteBusinessCascade removes a listing's reviews, then its deals, then
// the listing row itself. Deleting an already-gone listing is a no-op
// success; a mid-cascade failure returns the partial report alongside the
// error so the caller can see what was already removed.
func (srv *cascadeService) DeleteBusinessCascade(ctx context.Context, businessID uuid.UUID) (*usecase.CascadeReport, error) {
	report := &usecase.CascadeReport{}

	if _, err := srv.businessRepo.FindByID(ctx, businessID); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			srv.logger.Info("Listing cascade found nothing to delete", "businessID", businessID)

			return report, nil
		}

		return report, storeErr(err, "failed to find listing for cascade")
	}

	reviews, err := srv.reviewRepo.DeleteByBusiness(ctx, businessID)
	report.ReviewsDeleted = reviews
	if err != nil {
		srv.logger.Error("Listing cascade stopped at reviews", "businessID", businessID, "error", err)

		return report, storeErr(err, "failed to delete listing reviews")
	}

	deals, err := srv.dealRepo.DeleteByBusiness(ctx, businessID)
	report.DealsDeleted = deals
	if err != nil {
		srv.logger.Error("Listing cascade stopped at deals", "businessID", businessID, "error", err)

		return report, storeErr(err, "failed to delete listing deals")
	}

	if err := srv.businessRepo.DeleteByID(ctx, businessID); err != nil {
		// Lost a race with another delete: dependents are gone either way.
		if !errors.Is(err, repository.ErrBusinessNotFound) {
			srv.logger.Error("Listing cascade stopped at the listing row", "businessID", businessID, "error", err)

			return report, storeErr(err, "failed to delete listing")
		}
	} else {
		report.BusinessDeleted = true
	}

	srv.logger.Info("Listing cascade complete",
		"businessID", businessID,
		"reviewsDeleted", report.ReviewsDeleted,
		"dealsDeleted", report.DealsDeleted)

	return report, nil
}

// DeleteAccountCascade removes the account's owned listing (with its own
// cascade), every review the account authored anywhere, and finally the
// account row. Order matters: nothing may reference the account once its
// row is gone.
func (srv *cascadeService) DeleteAccountCascade(ctx context.Context, userID uuid.UUID) (*usecase.CascadeReport, error) {
	report := &usecase.CascadeReport{}

	business, err := srv.businessRepo.FindByOwner(ctx, userID)
	switch {
	case err == nil:
		businessReport, err := srv.DeleteBusinessCascade(ctx, business.ID)
		report.ReviewsDeleted += businessReport.ReviewsDeleted
		report.DealsDeleted += businessReport.DealsDeleted
		report.BusinessDeleted = businessReport.BusinessDeleted

		if err != nil {
			srv.logger.Error("Account cascade stopped in the listing cascade", "userID", userID, "error", err)

			return report, err
		}
	case errors.Is(err, repository.ErrBusinessNotFound):
		// Account owns no listing, nothing to cascade there.
	default:
		return report, storeErr(err, "failed to find owned listing for cascade")
	}

	authored, err := srv.reviewRepo.DeleteByAuthor(ctx, userID)
	report.ReviewsDeleted += authored
	if err != nil {
		srv.logger.Error("Account cascade stopped at authored reviews", "userID", userID, "error", err)

		return report, storeErr(err, "failed to delete authored reviews")
	}

	if err := srv.userRepo.DeleteByID(ctx, userID); err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Error("Account cascade stopped at the account row", "userID", userID, "error", err)

			return report, storeErr(err, "failed to delete account")
		}
	} else {
		report.AccountDeleted = true
	}

	srv.logger.Info("Account cascade complete",
		"userID", userID,
		"reviewsDeleted", report.ReviewsDeleted,
		"dealsDeleted", report.DealsDeleted,
		"businessDeleted", report.BusinessDeleted)

	return report, nil
}
