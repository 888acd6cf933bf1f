package middleware

import (
	"strings"

	"bizdir/internal/domain/entity"
	"bizdir/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// actorKey is the echo context key the resolved account is stored under.
const actorKey = "actor"

// IdentityMiddleware resolves the request's session token to an account and
// stores it on the context. It never rejects a request: no token, a bad
// token, or a token for a deleted account all resolve to an anonymous
// request, and each operation decides for itself whether anonymous is
// acceptable.
type IdentityMiddleware struct {
	identityUC usecase.IdentityUsecase
}

// NewIdentityMiddleware is the constructor for IdentityMiddleware.
func NewIdentityMiddleware(identityUC usecase.IdentityUsecase) *IdentityMiddleware {
	return &IdentityMiddleware{identityUC: identityUC}
}

// Resolve runs identity resolution for every request.
func (m *IdentityMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)

		actor, err := m.identityUC.Resolve(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		if actor != nil {
			c.Set(actorKey, actor)
		}

		return next(c)
	}
}

// Actor returns the account the request is authenticated as, or nil for an
// anonymous request.
func Actor(c echo.Context) *entity.User {
	if actor, ok := c.Get(actorKey).(*entity.User); ok {
		return actor
	}

	return nil
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}

	return token
}
