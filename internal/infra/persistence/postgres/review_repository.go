package postgres

import (
	"context"

	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	"bizdir/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// FindByID retrieves a single review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// FindByBusiness retrieves all reviews on a listing, newest first.
func (repo *reviewRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&reviewModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by business")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// FindByAuthor retrieves all reviews written by an account, newest first.
func (repo *reviewRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&reviewModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by author")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// Create persists a new review to the database.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationMissing.WrapMessage("reviewed business or author does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationMissing.WrapMessage("missing required review information")
		}

		return domainerrors.NewStoreExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// UpdateFields merges only the supplied fields into the stored record.
func (repo *reviewRepository) UpdateFields(ctx context.Context, id uuid.UUID, update repository.ReviewUpdate) error {
	values := map[string]any{}
	if update.Body != nil {
		values["body"] = *update.Body
	}

	if len(values) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return domainerrors.NewStoreExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// DeleteByID removes the review if it exists.
func (repo *reviewRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReviewModel{})
	if result.Error != nil {
		return domainerrors.NewStoreExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// DeleteByBusiness removes every review on a listing. Zero deletions is a
// valid outcome, not an error.
func (repo *reviewRepository) DeleteByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Delete(&model.ReviewModel{})
	if result.Error != nil {
		return 0, domainerrors.NewStoreExecuteError(result.Error, "failed to delete reviews by business")
	}

	return result.RowsAffected, nil
}

// DeleteByAuthor removes every review written by an account.
func (repo *reviewRepository) DeleteByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Delete(&model.ReviewModel{})
	if result.Error != nil {
		return 0, domainerrors.NewStoreExecuteError(result.Error, "failed to delete reviews by author")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:             data.ID,
		BusinessID:     data.BusinessID,
		AuthorID:       data.AuthorID,
		AuthorImageRef: data.AuthorImageRef,
		Body:           data.Body,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toReviewDomainSlice(data []*model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(data))
	for _, reviewM := range data {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:             data.ID,
		BusinessID:     data.BusinessID,
		AuthorID:       data.AuthorID,
		AuthorImageRef: data.AuthorImageRef,
		Body:           data.Body,
	}
}
