package usecase

import (
	"context"

	"bizdir/internal/domain/entity"

	"github.com/google/uuid"
)

// BusinessUsecase defines the listing-related business operations.
type BusinessUsecase interface {
	CreateBusiness(ctx context.Context, actor *entity.User, input *CreateBusinessInput) (*entity.Business, error)
	GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error)
	ListBusinesses(ctx context.Context, category string) ([]*entity.Business, error)
	UpdateBusiness(ctx context.Context, actor *entity.User, businessID uuid.UUID, input *UpdateBusinessInput) error
	DeleteBusiness(ctx context.Context, actor *entity.User, businessID uuid.UUID) (*CascadeReport, error)
	ListingQR(ctx context.Context, businessID uuid.UUID) ([]byte, error)
}

// CreateBusinessInput defines the data required to create a listing.
type CreateBusinessInput struct {
	CompanyName  string   `json:"company_name" validate:"required,max=150"`
	Description  string   `json:"description"`
	Location     string   `json:"location" validate:"max=255"`
	Category     string   `json:"category" validate:"max=100"`
	ImageRefs    []string `json:"image_refs"`
	ContactEmail string   `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string   `json:"contact_phone" validate:"max=30"`
	Website      string   `json:"website" validate:"omitempty,url"`
}

// UpdateBusinessInput is a partial listing edit. Nil fields keep their
// stored value; a changed Location is re-geocoded best-effort.
type UpdateBusinessInput struct {
	CompanyName  *string   `json:"company_name,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Category     *string   `json:"category,omitempty"`
	ImageRefs    *[]string `json:"image_refs,omitempty"`
	ContactEmail *string   `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string   `json:"contact_phone,omitempty"`
	Website      *string   `json:"website,omitempty" validate:"omitempty,url"`
}
