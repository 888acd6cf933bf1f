package postgres

import (
	"context"
	"encoding/json"

	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	"bizdir/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// businessRepository implements the repository.BusinessRepository interface using GORM.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// FindByID retrieves a single listing by its unique ID.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&businessM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by id")
	}

	return toBusinessDomain(&businessM), nil
}

// FindByOwner retrieves the listing owned by the given account.
func (repo *businessRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&businessM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by owner")
	}

	return toBusinessDomain(&businessM), nil
}

// List retrieves listings for the public directory, optionally filtered by category.
func (repo *businessRepository) List(ctx context.Context, category string) ([]*entity.Business, error) {
	query := repo.db.WithContext(ctx).Order("company_name ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var businessModels []*model.BusinessModel
	if err := query.Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	listings := make([]*entity.Business, 0, len(businessModels))
	for _, businessM := range businessModels {
		listings = append(listings, toBusinessDomain(businessM))
	}

	return listings, nil
}

// Create persists a new listing to the database.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrBusinessOwnerTaken
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationMissing.WrapMessage("owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationMissing.WrapMessage("missing required listing information")
		}

		return domainerrors.NewStoreExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// UpdateFields merges only the supplied fields into the stored record.
func (repo *businessRepository) UpdateFields(ctx context.Context, id uuid.UUID, update repository.BusinessUpdate) error {
	values := map[string]any{}
	if update.CompanyName != nil {
		values["company_name"] = *update.CompanyName
	}
	if update.Description != nil {
		values["description"] = *update.Description
	}
	if update.Location != nil {
		values["location"] = *update.Location
	}
	if update.Coordinate != nil {
		values["longitude"] = update.Coordinate.Lon()
		values["latitude"] = update.Coordinate.Lat()
	}
	if update.Category != nil {
		values["category"] = *update.Category
	}
	if update.ImageRefs != nil {
		// The column is jsonb; the serializer only covers struct writes.
		encoded, err := json.Marshal(*update.ImageRefs)
		if err != nil {
			return errors.Wrap(err, "failed to encode image refs")
		}
		values["image_refs"] = string(encoded)
	}
	if update.ContactEmail != nil {
		values["contact_email"] = *update.ContactEmail
	}
	if update.ContactPhone != nil {
		values["contact_phone"] = *update.ContactPhone
	}
	if update.Website != nil {
		values["website"] = *update.Website
	}

	if len(values) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return domainerrors.NewStoreExecuteError(result.Error, "failed to update business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// DeleteByID removes the listing if it exists.
func (repo *businessRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BusinessModel{})
	if result.Error != nil {
		return domainerrors.NewStoreExecuteError(result.Error, "failed to delete business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	return &entity.Business{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		CompanyName: data.CompanyName,
		Description: data.Description,
		Location:    data.Location,
		Coordinate:  orb.Point{data.Longitude, data.Latitude},
		Category:    data.Category,
		ImageRefs:   data.ImageRefs,
		Contact: entity.Contact{
			Email:   data.ContactEmail,
			Phone:   data.ContactPhone,
			Website: data.Website,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel.
func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	return &model.BusinessModel{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		CompanyName:  data.CompanyName,
		Description:  data.Description,
		Location:     data.Location,
		Longitude:    data.Coordinate.Lon(),
		Latitude:     data.Coordinate.Lat(),
		Category:     data.Category,
		ImageRefs:    data.ImageRefs,
		ContactEmail: data.Contact.Email,
		ContactPhone: data.Contact.Phone,
		Website:      data.Contact.Website,
	}
}
