package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bizdir/internal/delivery/http/validator"
	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	mockUC "bizdir/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBusinessHandler_Get_Success(t *testing.T) {
	businessUC := mockUC.NewMockBusinessUsecase(t)
	handler := NewBusinessHandler(businessUC, discardLogger())

	businessID := uuid.New()
	businessUC.EXPECT().
		GetBusiness(mock.Anything, businessID).
		Return(&entity.Business{ID: businessID, CompanyName: "Corner Cafe"}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/business/"+businessID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(businessID.String())

	err := handler.Get(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Corner Cafe")
}

func TestBusinessHandler_Get_BadID(t *testing.T) {
	businessUC := mockUC.NewMockBusinessUsecase(t)
	handler := NewBusinessHandler(businessUC, discardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/business/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.Get(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Anonymous create reaches the usecase with a nil actor; the denial comes
// back as an application error for the error handler to translate.
func TestBusinessHandler_Create_Anonymous(t *testing.T) {
	businessUC := mockUC.NewMockBusinessUsecase(t)
	handler := NewBusinessHandler(businessUC, discardLogger())

	businessUC.EXPECT().
		CreateBusiness(mock.Anything, (*entity.User)(nil), mock.Anything).
		Return(nil, domainerrors.ErrLoginRequired)

	e := newTestEcho()
	body := `{"company_name":"Corner Cafe"}`
	req := httptest.NewRequest(http.MethodPost, "/business", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)

	assert.ErrorIs(t, err, domainerrors.ErrLoginRequired)
}

func TestBusinessHandler_Create_MissingCompanyName(t *testing.T) {
	businessUC := mockUC.NewMockBusinessUsecase(t)
	handler := NewBusinessHandler(businessUC, discardLogger())

	e := newTestEcho()
	body := `{"description":"no name"}`
	req := httptest.NewRequest(http.MethodPost, "/business", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBusinessHandler_QR_ServesPNG(t *testing.T) {
	businessUC := mockUC.NewMockBusinessUsecase(t)
	handler := NewBusinessHandler(businessUC, discardLogger())

	businessID := uuid.New()
	businessUC.EXPECT().
		ListingQR(mock.Anything, businessID).
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/business/"+businessID.String()+"/qr", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(businessID.String())

	err := handler.QR(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}
