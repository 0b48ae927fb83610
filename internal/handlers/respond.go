package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/validation"
)

func badRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Success: false, Message: "Invalid request body",
	})
}

func validationFailed(c *fiber.Ctx, message string, verr *validation.Error) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
		Success: false, Message: message, Errors: verr.Fields,
	})
}

func notFound(c *fiber.Ctx, message, detail string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Success: false, Message: message, Error: detail,
	})
}

// internalError logs the real cause and answers with a generic message;
// internals never reach the client.
func internalError(c *fiber.Ctx, action string, err error) error {
	slog.Error(action, "error", err, "method", c.Method(), "path", c.Path())
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Success: false, Message: "An error occurred while processing the request",
		Error: "An internal error occurred",
	})
}
