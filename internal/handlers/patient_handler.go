package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/validation"
)

type PatientHandler struct {
	patientService *services.PatientService
}

func NewPatientHandler(patientService *services.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

func (h *PatientHandler) List(c *fiber.Ctx) error {
	patients, err := h.patientService.List(c.Context())
	if err != nil {
		return internalError(c, "list patients failed", err)
	}
	count := len(patients)
	return c.JSON(dto.Response{
		Success: true, Message: "Patients retrieved successfully",
		Data: patients, Count: &count,
	})
}

func (h *PatientHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "Patient not found", "no patient matches the given id")
	}

	patient, err := h.patientService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			return notFound(c, "Patient not found", "no patient matches the given id")
		}
		return internalError(c, "get patient failed", err)
	}

	return c.JSON(dto.Response{
		Success: true, Message: "Patient retrieved successfully", Data: patient,
	})
}

func (h *PatientHandler) Create(c *fiber.Ctx) error {
	var req dto.PatientPayload
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	patient, err := h.patientService.Create(c.Context(), &req)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return validationFailed(c, "Validation error", verr)
		}
		return internalError(c, "create patient failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Success: true, Message: "Patient created successfully", Data: patient,
	})
}

func (h *PatientHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "Patient not found", "no patient matches the given id")
	}

	var req dto.PatientPayload
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	patient, err := h.patientService.Update(c.Context(), id, &req)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return validationFailed(c, "Validation error", verr)
		}
		if errors.Is(err, services.ErrPatientNotFound) {
			return notFound(c, "Patient not found", "no patient matches the given id")
		}
		return internalError(c, "update patient failed", err)
	}

	return c.JSON(dto.Response{
		Success: true, Message: "Patient updated successfully", Data: patient,
	})
}

func (h *PatientHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "Patient not found", "no patient matches the given id")
	}

	if err := h.patientService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			return notFound(c, "Patient not found", "no patient matches the given id")
		}
		return internalError(c, "delete patient failed", err)
	}

	return c.JSON(dto.Response{
		Success: true, Message: "Patient deleted successfully",
		Data: dto.DeletedResponse{DeletedID: id.String()},
	})
}

// Search matches the term against last name, first name and email.
func (h *PatientHandler) Search(c *fiber.Ctx) error {
	term := c.Query("query")

	patients, err := h.patientService.Search(c.Context(), term)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return validationFailed(c, "Validation error", verr)
		}
		return internalError(c, "search patients failed", err)
	}

	count := len(patients)
	return c.JSON(dto.Response{
		Success: true, Message: "Search completed successfully",
		Data: patients, Count: &count, SearchTerm: term,
	})
}

func (h *PatientHandler) ByGender(c *fiber.Ctx) error {
	gender := c.Query("gender")

	patients, err := h.patientService.ByGender(c.Context(), gender)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return validationFailed(c, "Validation error", verr)
		}
		return internalError(c, "filter patients failed", err)
	}

	label := "Male"
	if gender == models.GenderFemale {
		label = "Female"
	}

	count := len(patients)
	return c.JSON(dto.Response{
		Success: true, Message: label + " patients retrieved successfully",
		Data: patients, Count: &count, Gender: gender,
	})
}
