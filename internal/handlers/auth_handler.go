package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/validation"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	user, credential, err := h.authService.Login(c.Context(), &req, c.Cookies(h.cfg.SessionCookie))
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return validationFailed(c, "Validation error", verr)
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Same payload whether the email or the password was wrong.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Success: false, Message: "Invalid credentials",
			})
		}
		return internalError(c, "login failed", err)
	}

	resp := dto.LoginResponse{Message: "Logged in successfully", User: user}
	if h.cfg.AuthStrategy == config.StrategySession {
		c.Cookie(&fiber.Cookie{
			Name:     h.cfg.SessionCookie,
			Value:    credential,
			Expires:  time.Now().Add(h.cfg.SessionExpiry),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Path:     "/",
		})
	} else {
		resp.Token = credential
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	credential := middleware.BearerToken(c)
	if h.cfg.AuthStrategy == config.StrategySession {
		credential = c.Cookies(h.cfg.SessionCookie)
	}

	if err := h.authService.Logout(c.Context(), credential); err != nil {
		return internalError(c, "logout failed", err)
	}

	if h.cfg.AuthStrategy == config.StrategySession {
		c.ClearCookie(h.cfg.SessionCookie)
	}

	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// Me returns the identity the access guard attached to the request.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := identity.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Not authenticated",
		})
	}
	return c.JSON(user)
}
