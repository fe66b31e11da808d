package middleware

import (
	"strings"

	deliverycontext "novelhub/internal/delivery/context"
	"novelhub/internal/delivery/api/response"
	"novelhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the reader from the auth backend's access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "SIGN_IN_REQUIRED", "Please sign in to continue")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		identity, err := m.tokenSvc.Identify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired access token")
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// Identify attaches the reader when a valid token is present and lets anonymous
// requests through. An invalid token is treated as anonymous.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), bearerPrefix)
		if ok && tokenString != "" {
			if identity, err := m.tokenSvc.Identify(tokenString); err == nil {
				deliverycontext.SetIdentity(c, identity)
			}
		}

		return next(c)
	}
}
