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

// DealHandler holds dependencies for deal-related handlers.
type DealHandler struct {
	dealUC usecase.DealUsecase
	logger *slog.Logger
}

// NewDealHandler is the constructor for DealHandler, injected by Fx.
func NewDealHandler(dealUC usecase.DealUsecase, logger *slog.Logger) *DealHandler {
	return &DealHandler{
		dealUC: dealUC,
		logger: logger,
	}
}

// Create handles posting a deal on a listing.
func (h *DealHandler) Create(c echo.Context) error {
	var input *usecase.CreateDealInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deal input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	deal, err := h.dealUC.CreateDeal(c.Request().Context(), middleware.Actor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, deal, "Deal posted successfully")
}

// ListByBusiness serves the deals on a listing. With ?active=true only
// deals inside their start/expiry window are returned.
func (h *DealHandler) ListByBusiness(c echo.Context) error {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing ID")
	}

	activeOnly := c.QueryParam("active") == "true"

	deals, err := h.dealUC.ListByBusiness(c.Request().Context(), businessID, activeOnly)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deals, "")
}

// Update handles a partial deal edit.
func (h *DealHandler) Update(c echo.Context) error {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid deal ID")
	}

	var input *usecase.UpdateDealInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	if err := h.dealUC.UpdateDeal(c.Request().Context(), middleware.Actor(c), dealID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Deal updated successfully")
}

// Delete removes a single deal.
func (h *DealHandler) Delete(c echo.Context) error {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid deal ID")
	}

	if err := h.dealUC.DeleteDeal(c.Request().Context(), middleware.Actor(c), dealID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Deal deleted")
}
