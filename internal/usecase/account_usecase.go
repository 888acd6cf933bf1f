package usecase

import (
	"context"

	"bizdir/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountUsecase defines the account-related business operations.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*SessionOutput, error)
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)
	GetProfile(ctx context.Context, username string) (*entity.User, error)
	UpdateDetails(ctx context.Context, actor *entity.User, userID uuid.UUID, input *UpdateDetailsInput) error
	DeleteAccount(ctx context.Context, actor *entity.User, userID uuid.UUID) (*CascadeReport, error)
}

// --- Input/Output DTOs ---

// RegisterInput defines the data required to create an account. Username and
// Email are case-normalized before storage.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,max=100"`
	Postcode string `json:"postcode" validate:"max=20"`
	Bio      string `json:"bio"`
	Phone    string `json:"phone" validate:"max=30"`
	ImageRef string `json:"image_ref"`
}

// LoginInput defines the credentials checked at login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionOutput carries the session token handed to the client together
// with the resolved account.
type SessionOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// UpdateDetailsInput is a partial profile edit. Nil fields keep their stored
// value.
type UpdateDetailsInput struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Name     *string `json:"name,omitempty"`
	Postcode *string `json:"postcode,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	ImageRef *string `json:"image_ref,omitempty"`
}
