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
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type businessServiceFixtures struct {
	service   usecase.BusinessUsecase
	txManager *mockRepo.MockTransactionManager
	geocoder  *mockSvc.MockGeocoder
	qrSvc     *mockSvc.MockQRCodeService
	cascade   *mockUC.MockCascadeUsecase
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	geocoder := mockSvc.NewMockGeocoder(t)
	qrSvc := mockSvc.NewMockQRCodeService(t)
	cascade := mockUC.NewMockCascadeUsecase(t)
	service := NewBusinessService(txManager, geocoder, qrSvc, cascade, testLogger())

	return businessServiceFixtures{
		service:   service,
		txManager: txManager,
		geocoder:  geocoder,
		qrSvc:     qrSvc,
		cascade:   cascade,
	}
}

func TestBusinessService_CreateBusiness_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	input := &usecase.CreateBusinessInput{
		CompanyName: "Corner Cafe",
		Location:    "12 High Street, Norwich",
		Category:    "cafe",
	}

	fx.geocoder.EXPECT().Geocode(ctx, "12 High Street, Norwich").Return(orb.Point{1.2974, 52.6309}, nil)

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(businessRepo)

		businessRepo.EXPECT().FindByOwner(ctx, actor.ID).Return(nil, repository.ErrBusinessNotFound)
		businessRepo.EXPECT().Create(ctx, mock.MatchedBy(func(business *entity.Business) bool {
			return business.OwnerID == actor.ID && business.Coordinate == orb.Point{1.2974, 52.6309}
		})).Return(nil)
	})

	business, err := fx.service.CreateBusiness(ctx, actor, input)

	require.NoError(t, err)
	assert.Equal(t, "Corner Cafe", business.CompanyName)
	assert.Equal(t, actor.ID, business.OwnerID)
}

func TestBusinessService_CreateBusiness_Anonymous(t *testing.T) {
	fx := createTestBusinessService(t)

	business, err := fx.service.CreateBusiness(context.Background(), nil, &usecase.CreateBusinessInput{CompanyName: "Ghost"})

	assert.Nil(t, business)
	assert.ErrorIs(t, err, domainerrors.ErrLoginRequired)
}

// A failed geocode must not fail the create: the listing is stored with the
// zero coordinate and the location text kept as entered.
func TestBusinessService_CreateBusiness_GeocodeFailure(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	input := &usecase.CreateBusinessInput{CompanyName: "Corner Cafe", Location: "nowhere in particular"}

	fx.geocoder.EXPECT().Geocode(ctx, "nowhere in particular").Return(orb.Point{}, errors.New("no result"))

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(businessRepo)

		businessRepo.EXPECT().FindByOwner(ctx, actor.ID).Return(nil, repository.ErrBusinessNotFound)
		businessRepo.EXPECT().Create(ctx, mock.MatchedBy(func(business *entity.Business) bool {
			return business.Coordinate == orb.Point{} && business.Location == "nowhere in particular"
		})).Return(nil)
	})

	business, err := fx.service.CreateBusiness(ctx, actor, input)

	require.NoError(t, err)
	assert.Equal(t, orb.Point{}, business.Coordinate)
}

func TestBusinessService_CreateBusiness_OwnerAlreadyHasOne(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(businessRepo)

		businessRepo.EXPECT().FindByOwner(ctx, actor.ID).Return(&entity.Business{OwnerID: actor.ID}, nil)
	})

	business, err := fx.service.CreateBusiness(ctx, actor, &usecase.CreateBusinessInput{CompanyName: "Second"})

	assert.Nil(t, business)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessAlreadyExists)
}

func TestBusinessService_GetBusiness_NotFound(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(businessRepo)

		businessRepo.EXPECT().FindByID(ctx, businessID).Return(nil, repository.ErrBusinessNotFound)
	})

	business, err := fx.service.GetBusiness(ctx, businessID)

	assert.Nil(t, business)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestBusinessService_ListBusinesses_ByCategory(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	expected := []*entity.Business{{CompanyName: "Corner Cafe", Category: "cafe"}}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(businessRepo)

		businessRepo.EXPECT().List(ctx, "cafe").Return(expected, nil)
	})

	businesses, err := fx.service.ListBusinesses(ctx, "cafe")

	require.NoError(t, err)
	assert.Equal(t, expected, businesses)
}

// Editing someone else's listing is denied after the fresh ownership read;
// no UpdateFields call is armed, so a write would fail the test.
func TestBusinessService_UpdateBusiness_NotOwner(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	stored := &entity.Business{ID: businessID, OwnerID: uuid.New()}
	actor := &entity.User{ID: uuid.New()}
	name := "Taken Over"

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(businessRepo)

		businessRepo.EXPECT().FindByID(ctx, businessID).Return(stored, nil)
	})

	err := fx.service.UpdateBusiness(ctx, actor, businessID, &usecase.UpdateBusinessInput{CompanyName: &name})

	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

// A relocation re-geocodes and writes the new coordinate with the update.
func TestBusinessService_UpdateBusiness_Relocation(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	owner := &entity.User{ID: uuid.New()}
	stored := &entity.Business{ID: businessID, OwnerID: owner.ID, Location: "12 High Street, Norwich"}
	newLocation := "3 Market Square, Ely"
	newPoint := orb.Point{0.2622, 52.3988}

	fx.geocoder.EXPECT().Geocode(ctx, newLocation).Return(newPoint, nil)

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(businessRepo)

		businessRepo.EXPECT().FindByID(ctx, businessID).Return(stored, nil)
		businessRepo.EXPECT().UpdateFields(ctx, businessID, mock.MatchedBy(func(update repository.BusinessUpdate) bool {
			return update.Location != nil && *update.Location == newLocation &&
				update.Coordinate != nil && *update.Coordinate == newPoint
		})).Return(nil)
	})

	err := fx.service.UpdateBusiness(ctx, owner, businessID, &usecase.UpdateBusinessInput{Location: &newLocation})

	require.NoError(t, err)
}

func TestBusinessService_DeleteBusiness_RunsCascade(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	owner := &entity.User{ID: uuid.New()}
	stored := &entity.Business{ID: businessID, OwnerID: owner.ID}
	report := &usecase.CascadeReport{ReviewsDeleted: 3, DealsDeleted: 1, BusinessDeleted: true}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(businessRepo)

		businessRepo.EXPECT().FindByID(ctx, businessID).Return(stored, nil)
	})

	fx.cascade.EXPECT().DeleteBusinessCascade(ctx, businessID).Return(report, nil)

	got, err := fx.service.DeleteBusiness(ctx, owner, businessID)

	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestBusinessService_DeleteBusiness_NotOwner(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	stored := &entity.Business{ID: businessID, OwnerID: uuid.New()}
	actor := &entity.User{ID: uuid.New()}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(businessRepo)

		businessRepo.EXPECT().FindByID(ctx, businessID).Return(stored, nil)
	})

	got, err := fx.service.DeleteBusiness(ctx, actor, businessID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestBusinessService_ListingQR_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	stored := &entity.Business{ID: businessID}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(businessRepo)

		businessRepo.EXPECT().FindByID(ctx, businessID).Return(stored, nil)
	})

	fx.qrSvc.EXPECT().GenerateListingQR(businessID).Return([]byte("png-bytes"), nil)

	png, err := fx.service.ListingQR(ctx, businessID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestBusinessService_ListingQR_MissingListing(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(businessRepo)

		businessRepo.EXPECT().FindByID(ctx, businessID).Return(nil, repository.ErrBusinessNotFound)
	})

	png, err := fx.service.ListingQR(ctx, businessID)

	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}
