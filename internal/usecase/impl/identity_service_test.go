package impl

import (
	"context"
	"testing"

	"bizdir/internal/domain/entity"
	"bizdir/internal/domain/repository"
	mockRepo "bizdir/internal/mocks/repository"
	mockSvc "bizdir/internal/mocks/service"
	"bizdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identityServiceFixtures struct {
	service  usecase.IdentityUsecase
	tokenSvc *mockSvc.MockSessionTokenService
	userRepo *mockRepo.MockUserRepository
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	tokenSvc := mockSvc.NewMockSessionTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewIdentityService(tokenSvc, userRepo, testLogger())

	return identityServiceFixtures{
		service:  service,
		tokenSvc: tokenSvc,
		userRepo: userRepo,
	}
}

func TestIdentityService_Resolve_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectedUser := &entity.User{ID: userID, Username: "alice"}

	fx.tokenSvc.EXPECT().Subject("valid-token").Return(userID, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(expectedUser, nil)

	user, err := fx.service.Resolve(ctx, "valid-token")

	require.NoError(t, err)
	assert.Equal(t, expectedUser, user)
}

func TestIdentityService_Resolve_EmptyToken(t *testing.T) {
	fx := createTestIdentityService(t)

	user, err := fx.service.Resolve(context.Background(), "")

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestIdentityService_Resolve_BadToken(t *testing.T) {
	fx := createTestIdentityService(t)

	fx.tokenSvc.EXPECT().Subject("garbage").Return(uuid.Nil, errors.New("token is malformed"))

	user, err := fx.service.Resolve(context.Background(), "garbage")

	require.NoError(t, err)
	assert.Nil(t, user)
}

// A token for a deleted account resolves to anonymous, not to a ghost user.
func TestIdentityService_Resolve_DeletedAccount(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenSvc.EXPECT().Subject("stale-token").Return(userID, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Resolve(ctx, "stale-token")

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestIdentityService_Resolve_StoreError(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenSvc.EXPECT().Subject("valid-token").Return(userID, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, errors.New("connection refused"))

	user, err := fx.service.Resolve(ctx, "valid-token")

	assert.Error(t, err)
	assert.Nil(t, user)
}
