package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/validation"
)

type AppointmentHandler struct {
	appointmentService *services.AppointmentService
}

func NewAppointmentHandler(appointmentService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	appointments, err := h.appointmentService.List(c.Context())
	if err != nil {
		return internalError(c, "list appointments failed", err)
	}
	count := len(appointments)
	return c.JSON(dto.Response{
		Success: true, Message: "Appointments retrieved successfully",
		Data: appointments, Count: &count,
	})
}

func (h *AppointmentHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "Appointment not found", "no appointment matches the given id")
	}

	appointment, err := h.appointmentService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			return notFound(c, "Appointment not found", "no appointment matches the given id")
		}
		return internalError(c, "get appointment failed", err)
	}

	return c.JSON(dto.Response{
		Success: true, Message: "Appointment retrieved successfully", Data: appointment,
	})
}

func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var req dto.AppointmentPayload
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	appointment, err := h.appointmentService.Create(c.Context(), &req)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return validationFailed(c, "Validation error", verr)
		}
		return internalError(c, "create appointment failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Success: true, Message: "Appointment created successfully", Data: appointment,
	})
}

func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "Appointment not found", "no appointment matches the given id")
	}

	var req dto.AppointmentPayload
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	appointment, err := h.appointmentService.Update(c.Context(), id, &req)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return validationFailed(c, "Validation error", verr)
		}
		if errors.Is(err, services.ErrAppointmentNotFound) {
			return notFound(c, "Appointment not found", "no appointment matches the given id")
		}
		return internalError(c, "update appointment failed", err)
	}

	return c.JSON(dto.Response{
		Success: true, Message: "Appointment updated successfully", Data: appointment,
	})
}

func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "Appointment not found", "no appointment matches the given id")
	}

	if err := h.appointmentService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			return notFound(c, "Appointment not found", "no appointment matches the given id")
		}
		return internalError(c, "delete appointment failed", err)
	}

	return c.JSON(dto.Response{
		Success: true, Message: "Appointment deleted successfully",
		Data: dto.DeletedResponse{DeletedID: id.String()},
	})
}
