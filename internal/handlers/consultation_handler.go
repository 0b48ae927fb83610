package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/validation"
)

type ConsultationHandler struct {
	consultationService *services.ConsultationService
}

func NewConsultationHandler(consultationService *services.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{consultationService: consultationService}
}

func (h *ConsultationHandler) List(c *fiber.Ctx) error {
	consultations, err := h.consultationService.List(c.Context())
	if err != nil {
		return internalError(c, "list consultations failed", err)
	}
	count := len(consultations)
	return c.JSON(dto.Response{
		Success: true, Message: "Consultations retrieved successfully",
		Data: consultations, Count: &count,
	})
}

func (h *ConsultationHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "Consultation not found", "no consultation matches the given id")
	}

	consultation, err := h.consultationService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrConsultationNotFound) {
			return notFound(c, "Consultation not found", "no consultation matches the given id")
		}
		return internalError(c, "get consultation failed", err)
	}

	return c.JSON(dto.Response{
		Success: true, Message: "Consultation retrieved successfully", Data: consultation,
	})
}

func (h *ConsultationHandler) Create(c *fiber.Ctx) error {
	var req dto.ConsultationPayload
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	consultation, err := h.consultationService.Create(c.Context(), &req)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return validationFailed(c, "Validation error", verr)
		}
		return internalError(c, "create consultation failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Success: true, Message: "Consultation created successfully", Data: consultation,
	})
}

func (h *ConsultationHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "Consultation not found", "no consultation matches the given id")
	}

	var req dto.ConsultationPayload
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	consultation, err := h.consultationService.Update(c.Context(), id, &req)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return validationFailed(c, "Validation error", verr)
		}
		if errors.Is(err, services.ErrConsultationNotFound) {
			return notFound(c, "Consultation not found", "no consultation matches the given id")
		}
		return internalError(c, "update consultation failed", err)
	}

	return c.JSON(dto.Response{
		Success: true, Message: "Consultation updated successfully", Data: consultation,
	})
}

func (h *ConsultationHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "Consultation not found", "no consultation matches the given id")
	}

	if err := h.consultationService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrConsultationNotFound) {
			return notFound(c, "Consultation not found", "no consultation matches the given id")
		}
		return internalError(c, "delete consultation failed", err)
	}

	return c.JSON(dto.Response{
		Success: true, Message: "Consultation deleted successfully",
		Data: dto.DeletedResponse{DeletedID: id.String()},
	})
}
