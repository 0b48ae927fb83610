package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/models"
)

const localsKey = "identity"

var ErrNoIdentity = errors.New("no identity attached to request")

// Set attaches the resolved user to the request. Only the access guard
// writes this; handlers read it.
func Set(c *fiber.Ctx, user *models.User) {
	c.Locals(localsKey, user)
}

// FromContext returns the user the access guard attached to the request.
func FromContext(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(localsKey).(*models.User)
	if !ok || user == nil {
		return nil, ErrNoIdentity
	}
	return user, nil
}
