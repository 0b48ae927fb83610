package middleware

import (
	"strings"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/services"
)

// unauthenticated is the uniform rejection. It never says which part of
// the credential was wrong.
func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Success: false, Message: "Not authenticated",
	})
}

// JWTProtected verifies the bearer token signature. Used by the token
// strategy in front of TokenIdentity.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return unauthenticated(c)
		},
	})
}

// TokenIdentity resolves the bearer token against the allow-list and
// attaches the identity. Revoked or expired tokens are rejected.
func TokenIdentity(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.ResolveToken(c.Context(), BearerToken(c))
		if err != nil {
			return unauthenticated(c)
		}
		identity.Set(c, user)
		return c.Next()
	}
}

// SessionIdentity resolves the session cookie and attaches the identity.
func SessionIdentity(cfg *config.Config, auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.ResolveSession(c.Context(), c.Cookies(cfg.SessionCookie))
		if err != nil {
			return unauthenticated(c)
		}
		identity.Set(c, user)
		return c.Next()
	}
}

// BearerToken extracts the raw token from the Authorization header.
func BearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:]
	}
	return ""
}
