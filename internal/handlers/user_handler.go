package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/validation"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.Context())
	if err != nil {
		return internalError(c, "list users failed", err)
	}
	count := len(users)
	return c.JSON(dto.Response{
		Success: true, Message: "Users retrieved successfully",
		Data: users, Count: &count,
	})
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "User not found", "no user matches the given id")
	}

	user, err := h.userService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, "User not found", "no user matches the given id")
		}
		return internalError(c, "get user failed", err)
	}

	return c.JSON(dto.Response{
		Success: true, Message: "User retrieved successfully", Data: user,
	})
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.UserPayload
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	user, err := h.userService.Create(c.Context(), &req)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return validationFailed(c, "Validation error", verr)
		}
		return internalError(c, "create user failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Success: true, Message: "User created successfully", Data: user,
	})
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "User not found", "no user matches the given id")
	}

	var req dto.UserPayload
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	user, err := h.userService.Update(c.Context(), id, &req)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return validationFailed(c, "Validation error", verr)
		}
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, "User not found", "no user matches the given id")
		}
		return internalError(c, "update user failed", err)
	}

	return c.JSON(dto.Response{
		Success: true, Message: "User updated successfully", Data: user,
	})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "User not found", "no user matches the given id")
	}

	if err := h.userService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, "User not found", "no user matches the given id")
		}
		return internalError(c, "delete user failed", err)
	}

	return c.JSON(dto.Response{
		Success: true, Message: "User deleted successfully",
		Data: dto.DeletedResponse{DeletedID: id.String()},
	})
}
