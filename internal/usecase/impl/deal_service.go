package impl

import (
	"context"
	"log/slog"
	"time"

	"bizdir/internal/domain/authz"
	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	"bizdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dealService implements the DealUsecase interface. Deals are owned through
// their listing, so every mutation resolves the listing fresh and runs the
// guard against it, never against the deal row.
type dealService struct {
	fx.In

	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewDealService is the constructor for dealService.
func NewDealService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.DealUsecase {
	return &dealService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateDeal posts a deal on the actor's listing.
func (srv *dealService) CreateDeal(ctx context.Context, actor *entity.User, input *usecase.CreateDealInput) (*entity.Deal, error) {
	srv.logger.Info("Creating deal", "businessID", input.BusinessID)

	deal := &entity.Deal{
		BusinessID: input.BusinessID,
		Text:       input.Text,
		StartsAt:   input.StartsAt,
		ExpiresAt:  input.ExpiresAt,
		ImageRef:   input.ImageRef,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. Resolve the owning listing
		business, err := repoFactory.BusinessRepo().FindByID(ctx, input.BusinessID)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return errors.Wrap(domainerrors.ErrBusinessNotFound, "owning listing missing")
			}

			return errors.Wrap(err, "failed to find business")
		}

		// 2. Authorize against the listing
		if err := guardErr(authz.Authorize(actor, authz.ActionCreateDeal, business)); err != nil {
			return err
		}

		// 3. Create the deal
		if err := repoFactory.DealRepo().Create(ctx, deal); err != nil {
			return errors.Wrap(err, "failed to create deal")
		}

		return nil
	})
	if err != nil {
		return nil, storeErr(err, "failed to create deal")
	}

	return deal, nil
}

// ListByBusiness retrieves the deals on an extant listing, newest first.
// With activeOnly set, deals outside their start/expiry window are dropped.
func (srv *dealService) ListByBusiness(ctx context.Context, businessID uuid.UUID, activeOnly bool) ([]*entity.Deal, error) {
	var deals []*entity.Deal

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.BusinessRepo().FindByID(ctx, businessID); err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return errors.Wrap(domainerrors.ErrBusinessNotFound, "no such listing")
			}

			return errors.Wrap(err, "failed to find business")
		}

		found, err := repoFactory.DealRepo().FindByBusiness(ctx, businessID)
		if err != nil {
			return errors.Wrap(err, "failed to list deals")
		}
		deals = found

		return nil
	})
	if err != nil {
		return nil, storeErr(err, "failed to list deals")
	}

	if !activeOnly {
		return deals, nil
	}

	now := time.Now()
	active := make([]*entity.Deal, 0, len(deals))

	for _, deal := range deals {
		if deal.Active(now) {
			active = append(active, deal)
		}
	}

	return active, nil
}

// UpdateDeal merges the supplied fields into the stored deal.
func (srv *dealService) UpdateDeal(ctx context.Context, actor *entity.User, dealID uuid.UUID, input *usecase.UpdateDealInput) error {
	srv.logger.Info("Updating deal", "dealID", dealID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dealRepo := repoFactory.DealRepo()

		business, err := srv.resolveOwnedDeal(ctx, repoFactory, dealID)
		if err != nil {
			return err
		}

		if err := guardErr(authz.Authorize(actor, authz.ActionEditDeal, business)); err != nil {
			return err
		}

		update := repository.DealUpdate{
			Text:      input.Text,
			StartsAt:  input.StartsAt,
			ExpiresAt: input.ExpiresAt,
			ImageRef:  input.ImageRef,
		}
		if err := dealRepo.UpdateFields(ctx, dealID, update); err != nil {
			if errors.Is(err, repository.ErrDealNotFound) {
				return errors.Wrap(domainerrors.ErrDealNotFound, "target deal missing")
			}

			return errors.Wrap(err, "failed to update deal")
		}

		return nil
	})

	return storeErr(err, "failed to update deal")
}

// DeleteDeal removes a single deal.
func (srv *dealService) DeleteDeal(ctx context.Context, actor *entity.User, dealID uuid.UUID) error {
	srv.logger.Info("Deleting deal", "dealID", dealID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		business, err := srv.resolveOwnedDeal(ctx, repoFactory, dealID)
		if err != nil {
			return err
		}

		if err := guardErr(authz.Authorize(actor, authz.ActionDeleteDeal, business)); err != nil {
			return err
		}

		if err := repoFactory.DealRepo().DeleteByID(ctx, dealID); err != nil {
			if errors.Is(err, repository.ErrDealNotFound) {
				return errors.Wrap(domainerrors.ErrDealNotFound, "target deal missing")
			}

			return errors.Wrap(err, "failed to delete deal")
		}

		return nil
	})

	return storeErr(err, "failed to delete deal")
}

// resolveOwnedDeal finds a deal and the listing it belongs to. Mutations
// authorize against the returned listing.
func (srv *dealService) resolveOwnedDeal(ctx context.Context, repoFactory repository.RepositoryFactory, dealID uuid.UUID) (*entity.Business, error) {
	deal, err := repoFactory.DealRepo().FindByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDealNotFound, "target deal missing")
		}

		return nil, errors.Wrap(err, "failed to find deal")
	}

	business, err := repoFactory.BusinessRepo().FindByID(ctx, deal.BusinessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "owning listing missing")
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return business, nil
}
