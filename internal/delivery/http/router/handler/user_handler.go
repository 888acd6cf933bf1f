package handler

import (
	"log/slog"
	"net/http"

	"bizdir/internal/delivery/http/middleware"
	"bizdir/internal/delivery/http/response"
	"bizdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(accountUC usecase.AccountUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		accountUC: accountUC,
		logger:    logger,
	}
}

// userView is the public shape of an account. The password hash never
// leaves the application layer.
type userView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Postcode string    `json:"postcode,omitempty"`
	Bio      string    `json:"bio,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	ImageRef string    `json:"image_ref,omitempty"`
}

func toUserView(out *usecase.SessionOutput) map[string]any {
	return map[string]any{
		"token": out.Token,
		"user": userView{
			ID:       out.User.ID,
			Username: out.User.Username,
			Email:    out.User.Email,
			Name:     out.User.Profile.Name,
			Postcode: out.User.Profile.Postcode,
			Bio:      out.User.Profile.Bio,
			Phone:    out.User.Profile.Phone,
			ImageRef: out.User.Profile.ImageRef,
		},
	}
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accountUC.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(output), "Account registered successfully")
}

// Login handles the login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accountUC.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(output), "Login successful")
}

// GetProfile serves a public profile page by username.
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.accountUC.GetProfile(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, userView{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Profile.Name,
		Postcode: user.Profile.Postcode,
		Bio:      user.Profile.Bio,
		Phone:    user.Profile.Phone,
		ImageRef: user.Profile.ImageRef,
	}, "")
}

// UpdateDetails handles a partial profile edit.
func (h *UserHandler) UpdateDetails(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	var input *usecase.UpdateDetailsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.accountUC.UpdateDetails(c.Request().Context(), middleware.Actor(c), userID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account updated successfully")
}

// DeleteAccount removes an account and everything it owns.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	report, err := h.accountUC.DeleteAccount(c.Request().Context(), middleware.Actor(c), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Account deleted")
}
