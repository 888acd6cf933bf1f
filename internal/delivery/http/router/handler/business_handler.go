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

// BusinessHandler holds dependencies for listing-related handlers.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(businessUC usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		businessUC: businessUC,
		logger:     logger,
	}
}

// Create handles the listing creation request.
func (h *BusinessHandler) Create(c echo.Context) error {
	var input *usecase.CreateBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	business, err := h.businessUC.CreateBusiness(c.Request().Context(), middleware.Actor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Listing created successfully")
}

// Get serves a single listing page.
func (h *BusinessHandler) Get(c echo.Context) error {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing ID")
	}

	business, err := h.businessUC.GetBusiness(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "")
}

// List serves the public directory, optionally filtered by category.
func (h *BusinessHandler) List(c echo.Context) error {
	businesses, err := h.businessUC.ListBusinesses(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// Update handles a partial listing edit.
func (h *BusinessHandler) Update(c echo.Context) error {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing ID")
	}

	var input *usecase.UpdateBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.businessUC.UpdateBusiness(c.Request().Context(), middleware.Actor(c), businessID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Listing updated successfully")
}

// Delete removes a listing together with its reviews and deals.
func (h *BusinessHandler) Delete(c echo.Context) error {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing ID")
	}

	report, err := h.businessUC.DeleteBusiness(c.Request().Context(), middleware.Actor(c), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Listing deleted")
}

// QR serves a scannable PNG share code for the listing page.
func (h *BusinessHandler) QR(c echo.Context) error {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing ID")
	}

	png, err := h.businessUC.ListingQR(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
