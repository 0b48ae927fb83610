package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/models"
)

// AdminRequired gates account management behind the admin role. Must run
// after the access guard has attached the identity.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := identity.FromContext(c)
		if err != nil {
			return unauthenticated(c)
		}
		if user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Success: false, Message: "Admin access required",
			})
		}
		return c.Next()
	}
}
