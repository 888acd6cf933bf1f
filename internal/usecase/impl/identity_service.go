// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"bizdir/internal/domain/entity"
	"bizdir/internal/domain/repository"
	"bizdir/internal/domain/service"
	"bizdir/internal/errors"
	"bizdir/internal/usecase"

	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	fx.In

	tokenSvc service.SessionTokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(
	tokenSvc service.SessionTokenService,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.IdentityUsecase {
	return &identityService{
		tokenSvc: tokenSvc,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Resolve maps a session token to the account it names. The account is
// re-read from the store on every call so a stale token for a deleted
// account resolves to anonymous rather than a ghost identity.
func (srv *identityService) Resolve(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, nil
	}

	userID, err := srv.tokenSvc.Subject(token)
	if err != nil {
		srv.logger.Debug("Rejecting session token", "error", err)

		return nil, nil
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Debug("Session token names a missing account", "userID", userID)

			return nil, nil
		}

		return nil, storeErr(err, "failed to resolve session identity")
	}

	return user, nil
}
