// Package middleware contains the Echo middleware of the HTTP delivery.
package middleware

import (
	"strings"

	domainerrors "luxe/internal/domain/errors"
	"luxe/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// keyClaims is the echo.Context key under which Authenticate stores the
// verified token claims.
const keyClaims = "claims"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its claims on the
// context. The decoded claims are the request's identity; the database is
// not consulted here.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrTokenMissing
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrTokenMissing
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		c.Set(keyClaims, claims)

		return next(c)
	}
}

// RequireAdmin rejects requests whose token does not carry the admin flag.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := CurrentClaims(c)
		if !ok {
			return domainerrors.ErrTokenMissing
		}
		if !claims.IsAdmin {
			return domainerrors.ErrAdminRequired
		}

		return next(c)
	}
}

// CurrentClaims returns the claims stored by Authenticate, if any.
func CurrentClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(keyClaims).(*service.Claims)

	return claims, ok
}
