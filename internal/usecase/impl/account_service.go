package impl

import (
	"context"
	"log/slog"
	"strings"

	"bizdir/internal/domain/authz"
	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	"bizdir/internal/domain/service"
	"bizdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	fx.In

	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	tokenSvc  service.SessionTokenService
	cascade   usecase.CascadeUsecase
	logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenSvc service.SessionTokenService,
	cascade usecase.CascadeUsecase,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		txManager: txManager,
		hasher:    hasher,
		tokenSvc:  tokenSvc,
		cascade:   cascade,
		logger:    logger,
	}
}

// Register creates a new account and logs it in. Username and email are
// lower-cased before the uniqueness checks so lookups stay case-insensitive.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.SessionOutput, error) {
	username := strings.ToLower(input.Username)
	email := strings.ToLower(input.Email)

	srv.logger.Info("Registering account", "username", username)

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Profile: entity.Profile{
			Name:     input.Name,
			Postcode: input.Postcode,
			Bio:      input.Bio,
			Phone:    input.Phone,
			ImageRef: input.ImageRef,
		},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Reject a taken username or email before writing
		if _, err := userRepo.FindByUsername(ctx, username); err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "username taken")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username")
		}

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email taken")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email")
		}

		// 2. Create the account
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, storeErr(err, "failed to register account")
	}

	token, err := srv.tokenSvc.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.SessionOutput{Token: token, User: user}, nil
}

// Login checks the submitted credentials and starts a session. Every failure
// mode collapses into the same invalid-credentials error so the response does
// not reveal whether the email is registered.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	email := strings.ToLower(input.Email)

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundUser, err := repoFactory.UserRepo().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = foundUser

		return nil
	})
	if err != nil {
		return nil, storeErr(err, "failed to log in")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Info("Rejected login", "email", email)

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	token, err := srv.tokenSvc.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.SessionOutput{Token: token, User: user}, nil
}

// GetProfile retrieves a public profile by username. No session is required.
func (srv *accountService) GetProfile(ctx context.Context, username string) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundUser, err := repoFactory.UserRepo().FindByUsername(ctx, strings.ToLower(username))
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "no such username")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = foundUser

		return nil
	})
	if err != nil {
		return nil, storeErr(err, "failed to get profile")
	}

	return user, nil
}

// UpdateDetails merges the supplied profile fields into the stored account.
// The target account is read fresh and the guard decides before any write.
func (srv *accountService) UpdateDetails(ctx context.Context, actor *entity.User, userID uuid.UUID, input *usecase.UpdateDetailsInput) error {
	srv.logger.Info("Updating account details", "userID", userID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Find the target account
		target, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "target account missing")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 2. Authorize the edit
		if err := guardErr(authz.Authorize(actor, authz.ActionEditProfile, target)); err != nil {
			return err
		}

		// 3. Merge the supplied fields only
		update := repository.UserUpdate{
			Name:     input.Name,
			Postcode: input.Postcode,
			Bio:      input.Bio,
			Phone:    input.Phone,
			ImageRef: input.ImageRef,
		}
		if input.Email != nil {
			lowered := strings.ToLower(*input.Email)
			update.Email = &lowered
		}

		if err := userRepo.UpdateFields(ctx, userID, update); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "target account missing")
			}

			return errors.Wrap(err, "failed to update user")
		}

		return nil
	})

	return storeErr(err, "failed to update account details")
}

// DeleteAccount removes the account together with everything it owns. The
// guard decides first; the cascade itself runs outside any transaction.
func (srv *accountService) DeleteAccount(ctx context.Context, actor *entity.User, userID uuid.UUID) (*usecase.CascadeReport, error) {
	srv.logger.Info("Deleting account", "userID", userID)

	var target *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundUser, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "target account missing")
			}

			return errors.Wrap(err, "failed to find user")
		}
		target = foundUser

		return nil
	})
	if err != nil {
		return nil, storeErr(err, "failed to delete account")
	}

	if err := guardErr(authz.Authorize(actor, authz.ActionDeleteAccount, target)); err != nil {
		return nil, err
	}

	return srv.cascade.DeleteAccountCascade(ctx, userID)
}
