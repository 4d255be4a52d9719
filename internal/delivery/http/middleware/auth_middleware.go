package middleware

import (
	"strings"

	deliverycontext "folio/internal/delivery/context"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/service"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
)

// keyAdminClaims is the echo.Context key holding the authenticated claims.
const keyAdminClaims = "adminClaims"

// AuthMiddleware guards admin routes behind a verified session token. This
// is a real authorization check on every write, not a client-side flag.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate validates the bearer token and records the admin identity on
// the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized.WithDetails("Authorization header must carry a Bearer token")
		}

		claims, err := m.sessions.Authenticate(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		c.Set(keyAdminClaims, claims)
		ctx := deliverycontext.WithAdminEmail(c.Request().Context(), claims.Email)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// AdminClaims returns the claims recorded by Authenticate, or nil on an
// unauthenticated request.
func AdminClaims(c echo.Context) *service.AdminClaims {
	claims, _ := c.Get(keyAdminClaims).(*service.AdminClaims)

	return claims
}
