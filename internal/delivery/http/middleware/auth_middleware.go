package middleware

import (
	"strings"

	"catlog/internal/delivery/http/response"
	"catlog/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyOwnerID is the echo context key carrying the authenticated owner ID.
const KeyOwnerID = "ownerID"

// AuthMiddleware provides middleware for access token authentication.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the bearer token and stores the owner ID on the
// context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.verifier.VerifyAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(KeyOwnerID, claims.OwnerID)

		return next(c)
	}
}
