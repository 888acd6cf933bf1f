package impl

import (
	"context"
	"testing"

	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	mockRepo "bizdir/internal/mocks/repository"
	mockSvc "bizdir/internal/mocks/service"
	mockUC "bizdir/internal/mocks/usecase"
	"bizdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service   usecase.AccountUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockSvc.MockPasswordHasher
	tokenSvc  *mockSvc.MockSessionTokenService
	cascade   *mockUC.MockCascadeUsecase
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockSessionTokenService(t)
	cascade := mockUC.NewMockCascadeUsecase(t)
	service := NewAccountService(txManager, hasher, tokenSvc, cascade, testLogger())

	return accountServiceFixtures{
		service:   service,
		txManager: txManager,
		hasher:    hasher,
		tokenSvc:  tokenSvc,
		cascade:   cascade,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "Alice",
		Email:    "Alice@Example.com",
		Password: "secret-password",
		Name:     "Alice",
	}

	fx.hasher.EXPECT().Hash("secret-password").Return("hashed", nil)

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			// Case-normalized identifiers and the hash, never the plaintext.
			return user.Username == "alice" && user.Email == "alice@example.com" && user.PasswordHash == "hashed"
		})).Return(nil)
	})

	fx.tokenSvc.EXPECT().Issue(uuid.Nil).Return("session-token", nil)

	out, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "session-token", out.Token)
	assert.Equal(t, "alice", out.User.Username)
	assert.Equal(t, "alice@example.com", out.User.Email)
	assert.Equal(t, "hashed", out.User.PasswordHash)
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret-password",
		Name:     "Alice",
	}

	fx.hasher.EXPECT().Hash("secret-password").Return("hashed", nil)

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().FindByUsername(ctx, "alice").Return(&entity.User{Username: "alice"}, nil)
	})

	out, err := fx.service.Register(ctx, input)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	storedUser := &entity.User{ID: userID, Email: "alice@example.com", PasswordHash: "hashed"}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(storedUser, nil)
	})

	fx.hasher.EXPECT().Check("secret-password", "hashed").Return(true)
	fx.tokenSvc.EXPECT().Issue(userID).Return("session-token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "Alice@Example.com", Password: "secret-password"})

	require.NoError(t, err)
	assert.Equal(t, "session-token", out.Token)
	assert.Equal(t, storedUser, out.User)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)
	})

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	storedUser := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "hashed"}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(storedUser, nil)
	})

	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_GetProfile_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	storedUser := &entity.User{ID: uuid.New(), Username: "alice"}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().FindByUsername(ctx, "alice").Return(storedUser, nil)
	})

	user, err := fx.service.GetProfile(ctx, "Alice")

	require.NoError(t, err)
	assert.Equal(t, storedUser, user)
}

func TestAccountService_UpdateDetails_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	actor := &entity.User{ID: userID}
	bio := "New bio"
	input := &usecase.UpdateDetailsInput{Bio: &bio}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(actor, nil)
		userRepo.EXPECT().UpdateFields(ctx, userID, repository.UserUpdate{Bio: &bio}).Return(nil)
	})

	err := fx.service.UpdateDetails(ctx, actor, userID, input)

	require.NoError(t, err)
}

// An account edit by anyone but the account itself is denied before any
// write is attempted; UpdateFields is never armed on the mock.
func TestAccountService_UpdateDetails_NotOwner(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	targetID := uuid.New()
	target := &entity.User{ID: targetID}
	actor := &entity.User{ID: uuid.New()}
	bio := "hijacked"

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, targetID).Return(target, nil)
	})

	err := fx.service.UpdateDetails(ctx, actor, targetID, &usecase.UpdateDetailsInput{Bio: &bio})

	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestAccountService_UpdateDetails_Anonymous(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	targetID := uuid.New()
	target := &entity.User{ID: targetID}
	bio := "drive-by"

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, targetID).Return(target, nil)
	})

	err := fx.service.UpdateDetails(ctx, nil, targetID, &usecase.UpdateDetailsInput{Bio: &bio})

	assert.ErrorIs(t, err, domainerrors.ErrLoginRequired)
}

func TestAccountService_DeleteAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	actor := &entity.User{ID: userID}
	report := &usecase.CascadeReport{ReviewsDeleted: 2, AccountDeleted: true}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(actor, nil)
	})

	fx.cascade.EXPECT().DeleteAccountCascade(ctx, userID).Return(report, nil)

	got, err := fx.service.DeleteAccount(ctx, actor, userID)

	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestAccountService_DeleteAccount_NotOwner(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	targetID := uuid.New()
	target := &entity.User{ID: targetID}
	actor := &entity.User{ID: uuid.New()}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, targetID).Return(target, nil)
	})

	got, err := fx.service.DeleteAccount(ctx, actor, targetID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}
