package impl

import (
	"context"
	"testing"

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

type reviewServiceFixtures struct {
	service   usecase.ReviewUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewReviewService(txManager, testLogger())

	return reviewServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

// Posting a review snapshots the author's current profile image onto the
// review; later profile edits must not rewrite it.
func TestReviewService_CreateReview_SnapshotsAuthorImage(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	businessID := uuid.New()
	actor := &entity.User{
		ID:      uuid.New(),
		Profile: entity.Profile{ImageRef: "avatar-at-posting-time"},
	}
	input := &usecase.CreateReviewInput{BusinessID: &businessID, Body: "Great coffee"}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		factory.EXPECT().BusinessRepo().Return(businessRepo)
		factory.EXPECT().ReviewRepo().Return(reviewRepo)

		businessRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.Business{ID: businessID}, nil)
		reviewRepo.EXPECT().Create(ctx, mock.MatchedBy(func(review *entity.Review) bool {
			return review.AuthorID == actor.ID && review.AuthorImageRef == "avatar-at-posting-time"
		})).Return(nil)
	})

	review, err := fx.service.CreateReview(ctx, actor, input)

	require.NoError(t, err)
	assert.Equal(t, "avatar-at-posting-time", review.AuthorImageRef)
	assert.Equal(t, &businessID, review.BusinessID)
}

func TestReviewService_CreateReview_Anonymous(t *testing.T) {
	fx := createTestReviewService(t)

	businessID := uuid.New()

	review, err := fx.service.CreateReview(context.Background(), nil, &usecase.CreateReviewInput{BusinessID: &businessID, Body: "sneaky"})

	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrLoginRequired)
}

func TestReviewService_CreateReview_MissingBusinessID(t *testing.T) {
	fx := createTestReviewService(t)

	actor := &entity.User{ID: uuid.New()}

	review, err := fx.service.CreateReview(context.Background(), actor, &usecase.CreateReviewInput{Body: "floating review"})

	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrValidationMissing)
}

func TestReviewService_CreateReview_MissingListing(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	businessID := uuid.New()
	actor := &entity.User{ID: uuid.New()}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(businessRepo)

		businessRepo.EXPECT().FindByID(ctx, businessID).Return(nil, repository.ErrBusinessNotFound)
	})

	review, err := fx.service.CreateReview(ctx, actor, &usecase.CreateReviewInput{BusinessID: &businessID, Body: "for nothing"})

	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestReviewService_UpdateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	author := &entity.User{ID: uuid.New()}
	stored := &entity.Review{ID: reviewID, AuthorID: author.ID, Body: "Good"}
	body := "Actually great"

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		factory.EXPECT().ReviewRepo().Return(reviewRepo)

		reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(stored, nil)
		reviewRepo.EXPECT().UpdateFields(ctx, reviewID, repository.ReviewUpdate{Body: &body}).Return(nil)
	})

	err := fx.service.UpdateReview(ctx, author, reviewID, &usecase.UpdateReviewInput{Body: &body})

	require.NoError(t, err)
}

// Only the author may edit a review. The denial happens after the fresh
// read and before any write; UpdateFields is never armed.
func TestReviewService_UpdateReview_NotAuthor(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	stored := &entity.Review{ID: reviewID, AuthorID: uuid.New()}
	actor := &entity.User{ID: uuid.New()}
	body := "vandalism"

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		factory.EXPECT().ReviewRepo().Return(reviewRepo)

		reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(stored, nil)
	})

	err := fx.service.UpdateReview(ctx, actor, reviewID, &usecase.UpdateReviewInput{Body: &body})

	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestReviewService_DeleteReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	author := &entity.User{ID: uuid.New()}
	stored := &entity.Review{ID: reviewID, AuthorID: author.ID}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		factory.EXPECT().ReviewRepo().Return(reviewRepo)

		reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(stored, nil)
		reviewRepo.EXPECT().DeleteByID(ctx, reviewID).Return(nil)
	})

	err := fx.service.DeleteReview(ctx, author, reviewID)

	require.NoError(t, err)
}

func TestReviewService_DeleteReview_NotAuthor(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	stored := &entity.Review{ID: reviewID, AuthorID: uuid.New()}
	actor := &entity.User{ID: uuid.New()}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		factory.EXPECT().ReviewRepo().Return(reviewRepo)

		reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(stored, nil)
	})

	err := fx.service.DeleteReview(ctx, actor, reviewID)

	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestReviewService_ListByBusiness_MissingListing(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	businessID := uuid.New()

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(businessRepo)

		businessRepo.EXPECT().FindByID(ctx, businessID).Return(nil, repository.ErrBusinessNotFound)
	})

	reviews, err := fx.service.ListByBusiness(ctx, businessID)

	assert.Nil(t, reviews)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}
