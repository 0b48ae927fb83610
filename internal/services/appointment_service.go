package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/validation"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentService manages scheduled visits. Status defaults to
// confirmed when the client does not send one.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	patients     repository.PatientRepository
	users        repository.UserRepository
}

func NewAppointmentService(appointments repository.AppointmentRepository, patients repository.PatientRepository, users repository.UserRepository) *AppointmentService {
	return &AppointmentService{appointments: appointments, patients: patients, users: users}
}

func (s *AppointmentService) List(ctx context.Context) ([]models.Appointment, error) {
	return s.appointments.List(ctx)
}

func (s *AppointmentService) Get(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	appointment, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return appointment, nil
}

func (s *AppointmentService) Create(ctx context.Context, req *dto.AppointmentPayload) (*models.Appointment, error) {
	if err := validation.Apply(ctx, s.rules(req, false)...); err != nil {
		return nil, err
	}

	status := models.StatusConfirmed
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}

	appointment := models.Appointment{
		ID:        uuid.New(),
		PatientID: *req.PatientID,
		UserID:    *req.UserID,
		DateTime:  req.DateTime.Time,
		Reason:    *req.Reason,
		Status:    status,
	}
	if err := s.appointments.Create(ctx, &appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	return s.Get(ctx, appointment.ID)
}

func (s *AppointmentService) Update(ctx context.Context, id uuid.UUID, req *dto.AppointmentPayload) (*models.Appointment, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validation.Apply(ctx, s.rules(req, true)...); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.PatientID != nil {
		updates["patient_id"] = *req.PatientID
	}
	if req.UserID != nil {
		updates["user_id"] = *req.UserID
	}
	if req.DateTime != nil {
		updates["date_time"] = req.DateTime.Time
	}
	if req.Reason != nil {
		updates["reason"] = *req.Reason
	}
	if req.Status != nil && *req.Status != "" {
		updates["status"] = *req.Status
	}

	if len(updates) == 0 {
		return current, nil
	}

	if _, err := s.appointments.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *AppointmentService) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := s.appointments.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	if n == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func (s *AppointmentService) rules(req *dto.AppointmentPayload, partial bool) []validation.Rule {
	requiredText := validation.Required
	if partial {
		requiredText = validation.RequiredIfPresent
	}

	rules := []validation.Rule{
		requiredText("reason", req.Reason, "The reason is required"),
		validation.MaxLen("reason", req.Reason, 255, "The reason may not be longer than 255 characters"),
		validation.OneOf("status", nonEmpty(req.Status), models.AppointmentStatuses, "The status must be confirmed, canceled or postponed"),
		validation.WellFormed("date_time", dateOK(req.DateTime), "The appointment date must be a valid date"),
	}

	if !partial {
		rules = append(rules,
			validation.RequiredID("patient_id", req.PatientID, "The patient is required"),
			validation.RequiredID("user_id", req.UserID, "The doctor is required"),
			validation.RequiredTime("date_time", datePtr(req.DateTime), "The appointment date is required"),
		)
	}

	if req.PatientID != nil {
		patientID := *req.PatientID
		rules = append(rules, validation.Exists("patient_id", "The selected patient does not exist", func(ctx context.Context) (bool, error) {
			return s.patients.Exists(ctx, patientID)
		}))
	}
	if req.UserID != nil {
		userID := *req.UserID
		rules = append(rules, validation.Exists("user_id", "The selected doctor does not exist", func(ctx context.Context) (bool, error) {
			return s.users.Exists(ctx, userID)
		}))
	}

	return rules
}

// nonEmpty treats an explicit empty string like an absent field, so the
// confirmed default still applies when a client sends "".
func nonEmpty(val *string) *string {
	if val == nil || *val == "" {
		return nil
	}
	return val
}
