package impl

import (
	"context"
	"log/slog"

	"bizdir/internal/domain/authz"
	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	"bizdir/internal/domain/service"
	"bizdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	fx.In

	txManager repository.TransactionManager
	geocoder  service.Geocoder
	qrSvc     service.QRCodeService
	cascade   usecase.CascadeUsecase
	logger    *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(
	txManager repository.TransactionManager,
	geocoder service.Geocoder,
	qrSvc service.QRCodeService,
	cascade usecase.CascadeUsecase,
	logger *slog.Logger,
) usecase.BusinessUsecase {
	return &businessService{
		txManager: txManager,
		geocoder:  geocoder,
		qrSvc:     qrSvc,
		cascade:   cascade,
		logger:    logger,
	}
}

// geocode resolves a coordinate for the location text. The coordinate is
// display-only, so a failed lookup logs and returns the zero point instead
// of failing the write that asked for it.
func (srv *businessService) geocode(ctx context.Context, location string) orb.Point {
	if location == "" {
		return orb.Point{}
	}

	point, err := srv.geocoder.Geocode(ctx, location)
	if err != nil {
		srv.logger.Warn("Geocoding failed, storing listing without coordinate",
			"location", location, "error", err)

		return orb.Point{}
	}

	return point
}

// CreateBusiness registers the actor's listing. Each account may own at
// most one listing; a second create is rejected as a conflict.
func (srv *businessService) CreateBusiness(ctx context.Context, actor *entity.User, input *usecase.CreateBusinessInput) (*entity.Business, error) {
	if actor == nil {
		return nil, domainerrors.ErrLoginRequired
	}

	srv.logger.Info("Creating listing", "ownerID", actor.ID, "companyName", input.CompanyName)

	business := &entity.Business{
		OwnerID:     actor.ID,
		CompanyName: input.CompanyName,
		Description: input.Description,
		Location:    input.Location,
		Coordinate:  srv.geocode(ctx, input.Location),
		Category:    input.Category,
		ImageRefs:   input.ImageRefs,
		Contact: entity.Contact{
			Email:   input.ContactEmail,
			Phone:   input.ContactPhone,
			Website: input.Website,
		},
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.BusinessRepo()

		// 1. One listing per owner
		if _, err := businessRepo.FindByOwner(ctx, actor.ID); err == nil {
			return errors.Wrap(domainerrors.ErrBusinessAlreadyExists, "owner already has a listing")
		} else if !errors.Is(err, repository.ErrBusinessNotFound) {
			return errors.Wrap(err, "failed to check owner listing")
		}

		// 2. Create the listing
		if err := businessRepo.Create(ctx, business); err != nil {
			if errors.Is(err, repository.ErrBusinessOwnerTaken) {
				return errors.Wrap(domainerrors.ErrBusinessAlreadyExists, "owner already has a listing")
			}

			return errors.Wrap(err, "failed to create business")
		}

		return nil
	})
	if err != nil {
		return nil, storeErr(err, "failed to create listing")
	}

	return business, nil
}

// GetBusiness retrieves a single listing page. No session is required.
func (srv *businessService) GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var business *entity.Business

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.BusinessRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return errors.Wrap(domainerrors.ErrBusinessNotFound, "no such listing")
			}

			return errors.Wrap(err, "failed to find business")
		}
		business = found

		return nil
	})
	if err != nil {
		return nil, storeErr(err, "failed to get listing")
	}

	return business, nil
}

// ListBusinesses retrieves the public directory, optionally filtered by
// category. An empty category means everything.
func (srv *businessService) ListBusinesses(ctx context.Context, category string) ([]*entity.Business, error) {
	var businesses []*entity.Business

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.BusinessRepo().List(ctx, category)
		if err != nil {
			return errors.Wrap(err, "failed to list businesses")
		}
		businesses = found

		return nil
	})
	if err != nil {
		return nil, storeErr(err, "failed to list directory")
	}

	return businesses, nil
}

// UpdateBusiness merges the supplied fields into the stored listing. A
// changed location is re-geocoded best-effort before the write.
func (srv *businessService) UpdateBusiness(ctx context.Context, actor *entity.User, businessID uuid.UUID, input *usecase.UpdateBusinessInput) error {
	srv.logger.Info("Updating listing", "businessID", businessID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.BusinessRepo()

		// 1. Find the target listing
		target, err := businessRepo.FindByID(ctx, businessID)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return errors.Wrap(domainerrors.ErrBusinessNotFound, "target listing missing")
			}

			return errors.Wrap(err, "failed to find business")
		}

		// 2. Authorize the edit
		if err := guardErr(authz.Authorize(actor, authz.ActionEditBusiness, target)); err != nil {
			return err
		}

		// 3. Merge the supplied fields only
		update := repository.BusinessUpdate{
			CompanyName:  input.CompanyName,
			Description:  input.Description,
			Location:     input.Location,
			Category:     input.Category,
			ImageRefs:    input.ImageRefs,
			ContactEmail: input.ContactEmail,
			ContactPhone: input.ContactPhone,
			Website:      input.Website,
		}
		if input.Location != nil && *input.Location != target.Location {
			point := srv.geocode(ctx, *input.Location)
			update.Coordinate = &point
		}

		if err := businessRepo.UpdateFields(ctx, businessID, update); err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return errors.Wrap(domainerrors.ErrBusinessNotFound, "target listing missing")
			}

			return errors.Wrap(err, "failed to update business")
		}

		return nil
	})

	return storeErr(err, "failed to update listing")
}

// DeleteBusiness removes the listing together with its reviews and deals.
// The guard decides first; the cascade itself runs outside any transaction.
func (srv *businessService) DeleteBusiness(ctx context.Context, actor *entity.User, businessID uuid.UUID) (*usecase.CascadeReport, error) {
	srv.logger.Info("Deleting listing", "businessID", businessID)

	var target *entity.Business

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.BusinessRepo().FindByID(ctx, businessID)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return errors.Wrap(domainerrors.ErrBusinessNotFound, "target listing missing")
			}

			return errors.Wrap(err, "failed to find business")
		}
		target = found

		return nil
	})
	if err != nil {
		return nil, storeErr(err, "failed to delete listing")
	}

	if err := guardErr(authz.Authorize(actor, authz.ActionDeleteBusiness, target)); err != nil {
		return nil, err
	}

	return srv.cascade.DeleteBusinessCascade(ctx, businessID)
}

// ListingQR renders a scannable share code for an extant listing page.
func (srv *businessService) ListingQR(ctx context.Context, businessID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetBusiness(ctx, businessID); err != nil {
		return nil, err
	}

	png, err := srv.qrSvc.GenerateListingQR(businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render listing QR code")
	}

	return png, nil
}
