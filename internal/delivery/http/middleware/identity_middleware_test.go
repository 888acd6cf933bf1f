package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bizdir/internal/domain/entity"
	mockUC "bizdir/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runResolve(t *testing.T, identityUC *mockUC.MockIdentityUsecase, authHeader string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewIdentityMiddleware(identityUC)
	err := mw.Resolve(func(c echo.Context) error { return nil })(c)
	require.NoError(t, err)

	return c
}

func TestIdentityMiddleware_Resolve_SetsActor(t *testing.T) {
	identityUC := mockUC.NewMockIdentityUsecase(t)
	user := &entity.User{ID: uuid.New(), Username: "alice"}

	identityUC.EXPECT().Resolve(mock.Anything, "valid-token").Return(user, nil)

	c := runResolve(t, identityUC, "Bearer valid-token")

	assert.Equal(t, user, Actor(c))
}

func TestIdentityMiddleware_Resolve_NoHeader(t *testing.T) {
	identityUC := mockUC.NewMockIdentityUsecase(t)

	identityUC.EXPECT().Resolve(mock.Anything, "").Return(nil, nil)

	c := runResolve(t, identityUC, "")

	assert.Nil(t, Actor(c))
}

// A non-Bearer Authorization header is treated as no token at all.
func TestIdentityMiddleware_Resolve_MalformedHeader(t *testing.T) {
	identityUC := mockUC.NewMockIdentityUsecase(t)

	identityUC.EXPECT().Resolve(mock.Anything, "").Return(nil, nil)

	c := runResolve(t, identityUC, "Basic dXNlcjpwYXNz")

	assert.Nil(t, Actor(c))
}
