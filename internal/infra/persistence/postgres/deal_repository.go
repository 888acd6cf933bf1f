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

// dealRepository implements the repository.DealRepository interface using GORM.
type dealRepository struct {
	db *gorm.DB
}

// NewDealRepository is the constructor for dealRepository.
func NewDealRepository(db *gorm.DB) repository.DealRepository {
	return &dealRepository{db: db}
}

// FindByID retrieves a single deal by its unique ID.
func (repo *dealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	var dealM model.DealModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dealM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDealNotFound
		}

		return nil, errors.Wrap(err, "failed to find deal by id")
	}

	return toDealDomain(&dealM), nil
}

// FindByBusiness retrieves all deals on a listing, newest first.
func (repo *dealRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Deal, error) {
	var dealModels []*model.DealModel
	err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&dealModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find deals by business")
	}

	deals := make([]*entity.Deal, 0, len(dealModels))
	for _, dealM := range dealModels {
		deals = append(deals, toDealDomain(dealM))
	}

	return deals, nil
}

// Create persists a new deal to the database.
func (repo *dealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	dealM := fromDealDomain(deal)

	if err := repo.db.WithContext(ctx).Create(dealM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationMissing.WrapMessage("listing does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationMissing.WrapMessage("missing required deal information")
		}

		return domainerrors.NewStoreExecuteError(err, "failed to create deal")
	}

	deal.ID = dealM.ID
	deal.CreatedAt = dealM.CreatedAt
	deal.UpdatedAt = dealM.UpdatedAt

	return nil
}

// UpdateFields merges only the supplied fields into the stored record.
func (repo *dealRepository) UpdateFields(ctx context.Context, id uuid.UUID, update repository.DealUpdate) error {
	values := map[string]any{}
	if update.Text != nil {
		values["text"] = *update.Text
	}
	if update.StartsAt != nil {
		values["starts_at"] = *update.StartsAt
	}
	if update.ExpiresAt != nil {
		values["expires_at"] = *update.ExpiresAt
	}
	if update.ImageRef != nil {
		values["image_ref"] = *update.ImageRef
	}

	if len(values) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DealModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return domainerrors.NewStoreExecuteError(result.Error, "failed to update deal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDealNotFound
	}

	return nil
}

// DeleteByID removes the deal if it exists.
func (repo *dealRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DealModel{})
	if result.Error != nil {
		return domainerrors.NewStoreExecuteError(result.Error, "failed to delete deal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDealNotFound
	}

	return nil
}

// DeleteByBusiness removes every deal on a listing. Zero deletions is a
// valid outcome, not an error.
func (repo *dealRepository) DeleteByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Delete(&model.DealModel{})
	if result.Error != nil {
		return 0, domainerrors.NewStoreExecuteError(result.Error, "failed to delete deals by business")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toDealDomain(data *model.DealModel) *entity.Deal {
	if data == nil {
		return nil
	}

	return &entity.Deal{
		ID:         data.ID,
		BusinessID: data.BusinessID,
		Text:       data.Text,
		StartsAt:   data.StartsAt,
		ExpiresAt:  data.ExpiresAt,
		ImageRef:   data.ImageRef,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromDealDomain(data *entity.Deal) *model.DealModel {
	if data == nil {
		return nil
	}

	return &model.DealModel{
		ID:         data.ID,
		BusinessID: data.BusinessID,
		Text:       data.Text,
		StartsAt:   data.StartsAt,
		ExpiresAt:  data.ExpiresAt,
		ImageRef:   data.ImageRef,
	}
}
