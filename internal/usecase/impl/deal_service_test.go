package impl

import (
	"context"
	"testing"
	"time"

	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	mockRepo "bizdir/internal/mocks/repository"
	"bizdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dealServiceFixtures struct {
	service   usecase.DealUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestDealService(t *testing.T) dealServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewDealService(txManager, testLogger())

	return dealServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestDealService_CreateDeal_Success(t *testing.T) {
	fx := createTestDealService(t)

	ctx := context.Background()
	businessID := uuid.New()
	owner := &entity.User{ID: uuid.New()}
	input := &usecase.CreateDealInput{
		BusinessID: businessID,
		Text:       "Two for one on flat whites",
		StartsAt:   time.Now(),
		ExpiresAt:  time.Now().Add(48 * time.Hour),
	}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		dealRepo := mockRepo.NewMockDealRepository(t)
		factory.EXPECT().BusinessRepo().Return(businessRepo)
		factory.EXPECT().DealRepo().Return(dealRepo)

		businessRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.Business{ID: businessID, OwnerID: owner.ID}, nil)
		dealRepo.EXPECT().Create(ctx, mock.MatchedBy(func(deal *entity.Deal) bool {
			return deal.BusinessID == businessID && deal.Text == "Two for one on flat whites"
		})).Return(nil)
	})

	deal, err := fx.service.CreateDeal(ctx, owner, input)

	require.NoError(t, err)
	assert.Equal(t, businessID, deal.BusinessID)
}

// Deals are owned through their listing: creation by anyone but the listing
// owner is denied against the listing, before any write.
func TestDealService_CreateDeal_NotListingOwner(t *testing.T) {
	fx := createTestDealService(t)

	ctx := context.Background()
	businessID := uuid.New()
	actor := &entity.User{ID: uuid.New()}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(businessRepo)

		businessRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.Business{ID: businessID, OwnerID: uuid.New()}, nil)
	})

	deal, err := fx.service.CreateDeal(ctx, actor, &usecase.CreateDealInput{BusinessID: businessID, Text: "not mine"})

	assert.Nil(t, deal)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestDealService_ListByBusiness_ActiveOnly(t *testing.T) {
	fx := createTestDealService(t)

	ctx := context.Background()
	businessID := uuid.New()
	now := time.Now()

	running := &entity.Deal{ID: uuid.New(), BusinessID: businessID, StartsAt: now.Add(-time.Hour), ExpiresAt: now.Add(time.Hour)}
	expired := &entity.Deal{ID: uuid.New(), BusinessID: businessID, StartsAt: now.Add(-48 * time.Hour), ExpiresAt: now.Add(-24 * time.Hour)}
	upcoming := &entity.Deal{ID: uuid.New(), BusinessID: businessID, StartsAt: now.Add(24 * time.Hour), ExpiresAt: now.Add(48 * time.Hour)}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		dealRepo := mockRepo.NewMockDealRepository(t)
		factory.EXPECT().BusinessRepo().Return(businessRepo)
		factory.EXPECT().DealRepo().Return(dealRepo)

		businessRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.Business{ID: businessID}, nil)
		dealRepo.EXPECT().FindByBusiness(ctx, businessID).Return([]*entity.Deal{running, expired, upcoming}, nil)
	})

	deals, err := fx.service.ListByBusiness(ctx, businessID, true)

	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, running.ID, deals[0].ID)
}

func TestDealService_ListByBusiness_All(t *testing.T) {
	fx := createTestDealService(t)

	ctx := context.Background()
	businessID := uuid.New()
	expired := &entity.Deal{ID: uuid.New(), BusinessID: businessID, ExpiresAt: time.Now().Add(-time.Hour)}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		dealRepo := mockRepo.NewMockDealRepository(t)
		factory.EXPECT().BusinessRepo().Return(businessRepo)
		factory.EXPECT().DealRepo().Return(dealRepo)

		businessRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.Business{ID: businessID}, nil)
		dealRepo.EXPECT().FindByBusiness(ctx, businessID).Return([]*entity.Deal{expired}, nil)
	})

	deals, err := fx.service.ListByBusiness(ctx, businessID, false)

	require.NoError(t, err)
	assert.Len(t, deals, 1)
}

func TestDealService_UpdateDeal_NotListingOwner(t *testing.T) {
	fx := createTestDealService(t)

	ctx := context.Background()
	dealID := uuid.New()
	businessID := uuid.New()
	actor := &entity.User{ID: uuid.New()}
	text := "hijacked"

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		dealRepo := mockRepo.NewMockDealRepository(t)
		factory.EXPECT().BusinessRepo().Return(businessRepo)
		factory.EXPECT().DealRepo().Return(dealRepo)

		dealRepo.EXPECT().FindByID(ctx, dealID).Return(&entity.Deal{ID: dealID, BusinessID: businessID}, nil)
		businessRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.Business{ID: businessID, OwnerID: uuid.New()}, nil)
	})

	err := fx.service.UpdateDeal(ctx, actor, dealID, &usecase.UpdateDealInput{Text: &text})

	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestDealService_DeleteDeal_Success(t *testing.T) {
	fx := createTestDealService(t)

	ctx := context.Background()
	dealID := uuid.New()
	businessID := uuid.New()
	owner := &entity.User{ID: uuid.New()}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		dealRepo := mockRepo.NewMockDealRepository(t)
		factory.EXPECT().BusinessRepo().Return(businessRepo)
		factory.EXPECT().DealRepo().Return(dealRepo)

		dealRepo.EXPECT().FindByID(ctx, dealID).Return(&entity.Deal{ID: dealID, BusinessID: businessID}, nil)
		businessRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.Business{ID: businessID, OwnerID: owner.ID}, nil)
		dealRepo.EXPECT().DeleteByID(ctx, dealID).Return(nil)
	})

	err := fx.service.DeleteDeal(ctx, owner, dealID)

	require.NoError(t, err)
}

func TestDealService_DeleteDeal_MissingDeal(t *testing.T) {
	fx := createTestDealService(t)

	ctx := context.Background()
	dealID := uuid.New()
	actor := &entity.User{ID: uuid.New()}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		dealRepo := mockRepo.NewMockDealRepository(t)
		factory.EXPECT().DealRepo().Return(dealRepo)

		dealRepo.EXPECT().FindByID(ctx, dealID).Return(nil, repository.ErrDealNotFound)
	})

	err := fx.service.DeleteDeal(ctx, actor, dealID)

	assert.ErrorIs(t, err, domainerrors.ErrDealNotFound)
}
