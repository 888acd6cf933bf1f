package impl

import (
	"context"
	"testing"

	"bizdir/internal/domain/entity"
	"bizdir/internal/domain/repository"
	mockRepo "bizdir/internal/mocks/repository"
	"bizdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cascadeServiceFixtures struct {
	service      usecase.CascadeUsecase
	userRepo     *mockRepo.MockUserRepository
	businessRepo *mockRepo.MockBusinessRepository
	reviewRepo   *mockRepo.MockReviewRepository
	dealRepo     *mockRepo.MockDealRepository
}

func createTestCascadeService(t *testing.T) cascadeServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	dealRepo := mockRepo.NewMockDealRepository(t)
	service := NewCascadeService(userRepo, businessRepo, reviewRepo, dealRepo, testLogger())

	return cascadeServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		businessRepo: businessRepo,
		reviewRepo:   reviewRepo,
		dealRepo:     dealRepo,
	}
}

func TestCascadeService_DeleteBusinessCascade_Success(t *testing.T) {
	fx := createTestCascadeService(t)

	ctx := context.Background()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.Business{ID: businessID}, nil)
	fx.reviewRepo.EXPECT().DeleteByBusiness(ctx, businessID).Return(3, nil)
	fx.dealRepo.EXPECT().DeleteByBusiness(ctx, businessID).Return(2, nil)
	fx.businessRepo.EXPECT().DeleteByID(ctx, businessID).Return(nil)

	report, err := fx.service.DeleteBusinessCascade(ctx, businessID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), report.ReviewsDeleted)
	assert.Equal(t, int64(2), report.DealsDeleted)
	assert.True(t, report.BusinessDeleted)
}

// Repeating a cascade on an already-deleted listing is a no-op success,
// not an error.
func TestCascadeService_DeleteBusinessCascade_Idempotent(t *testing.T) {
	fx := createTestCascadeService(t)

	ctx := context.Background()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().FindByID(ctx, businessID).Return(nil, repository.ErrBusinessNotFound)

	report, err := fx.service.DeleteBusinessCascade(ctx, businessID)

	require.NoError(t, err)
	assert.Zero(t, report.ReviewsDeleted)
	assert.Zero(t, report.DealsDeleted)
	assert.False(t, report.BusinessDeleted)
}

// A failure mid-cascade keeps the completed steps applied and reports what
// was already removed alongside the error. The listing row must survive so
// a retry can resume.
func TestCascadeService_DeleteBusinessCascade_PartialFailure(t *testing.T) {
	fx := createTestCascadeService(t)

	ctx := context.Background()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.Business{ID: businessID}, nil)
	fx.reviewRepo.EXPECT().DeleteByBusiness(ctx, businessID).Return(3, nil)
	fx.dealRepo.EXPECT().DeleteByBusiness(ctx, businessID).Return(0, errors.New("connection reset"))

	report, err := fx.service.DeleteBusinessCascade(ctx, businessID)

	assert.Error(t, err)
	require.NotNil(t, report)
	assert.Equal(t, int64(3), report.ReviewsDeleted)
	assert.False(t, report.BusinessDeleted)
}

func TestCascadeService_DeleteAccountCascade_WithListing(t *testing.T) {
	fx := createTestCascadeService(t)

	ctx := context.Background()
	userID := uuid.New()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().FindByOwner(ctx, userID).Return(&entity.Business{ID: businessID, OwnerID: userID}, nil)

	// Listing cascade runs first: its reviews, its deals, the listing row.
	fx.businessRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.Business{ID: businessID}, nil)
	fx.reviewRepo.EXPECT().DeleteByBusiness(ctx, businessID).Return(4, nil)
	fx.dealRepo.EXPECT().DeleteByBusiness(ctx, businessID).Return(1, nil)
	fx.businessRepo.EXPECT().DeleteByID(ctx, businessID).Return(nil)

	// Then the account's own reviews elsewhere, then the account row.
	fx.reviewRepo.EXPECT().DeleteByAuthor(ctx, userID).Return(2, nil)
	fx.userRepo.EXPECT().DeleteByID(ctx, userID).Return(nil)

	report, err := fx.service.DeleteAccountCascade(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(6), report.ReviewsDeleted)
	assert.Equal(t, int64(1), report.DealsDeleted)
	assert.True(t, report.BusinessDeleted)
	assert.True(t, report.AccountDeleted)
}

func TestCascadeService_DeleteAccountCascade_NoListing(t *testing.T) {
	fx := createTestCascadeService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.businessRepo.EXPECT().FindByOwner(ctx, userID).Return(nil, repository.ErrBusinessNotFound)
	fx.reviewRepo.EXPECT().DeleteByAuthor(ctx, userID).Return(1, nil)
	fx.userRepo.EXPECT().DeleteByID(ctx, userID).Return(nil)

	report, err := fx.service.DeleteAccountCascade(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(1), report.ReviewsDeleted)
	assert.False(t, report.BusinessDeleted)
	assert.True(t, report.AccountDeleted)
}

// Re-running the account cascade after everything is gone succeeds and
// reports nothing deleted.
func TestCascadeService_DeleteAccountCascade_Idempotent(t *testing.T) {
	fx := createTestCascadeService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.businessRepo.EXPECT().FindByOwner(ctx, userID).Return(nil, repository.ErrBusinessNotFound)
	fx.reviewRepo.EXPECT().DeleteByAuthor(ctx, userID).Return(0, nil)
	fx.userRepo.EXPECT().DeleteByID(ctx, userID).Return(repository.ErrUserNotFound)

	report, err := fx.service.DeleteAccountCascade(ctx, userID)

	require.NoError(t, err)
	assert.Zero(t, report.ReviewsDeleted)
	assert.False(t, report.AccountDeleted)
}

// A failure deleting authored reviews stops the cascade before the account
// row so no review is left pointing at a missing account.
func TestCascadeService_DeleteAccountCascade_StopsBeforeAccountRow(t *testing.T) {
	fx := createTestCascadeService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.businessRepo.EXPECT().FindByOwner(ctx, userID).Return(nil, repository.ErrBusinessNotFound)
	fx.reviewRepo.EXPECT().DeleteByAuthor(ctx, userID).Return(0, errors.New("connection reset"))

	report, err := fx.service.DeleteAccountCascade(ctx, userID)

	assert.Error(t, err)
	require.NotNil(t, report)
	assert.False(t, report.AccountDeleted)
}
