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

var ErrConsultationNotFound = errors.New("consultation not found")

// ConsultationService manages visit records. Foreign keys are checked
// against the patient and user repositories at validation time; the
// database constraints remain the backstop.
type ConsultationService struct {
	consultations repository.ConsultationRepository
	patients      repository.PatientRepository
	users         repository.UserRepository
}

func NewConsultationService(consultations repository.ConsultationRepository, patients repository.PatientRepository, users repository.UserRepository) *ConsultationService {
	return &ConsultationService{consultations: consultations, patients: patients, users: users}
}

func (s *ConsultationService) List(ctx context.Context) ([]models.Consultation, error) {
	return s.consultations.List(ctx)
}

func (s *ConsultationService) Get(ctx context.Context, id uuid.UUID) (*models.Consultation, error) {
	consultation, err := s.consultations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsultationNotFound
		}
		return nil, err
	}
	return consultation, nil
}

func (s *ConsultationService) Create(ctx context.Context, req *dto.ConsultationPayload) (*models.Consultation, error) {
	if err := validation.Apply(ctx, s.rules(req, false)...); err != nil {
		return nil, err
	}

	consultation := models.Consultation{
		ID:               uuid.New(),
		PatientID:        *req.PatientID,
		UserID:           *req.UserID,
		DateConsultation: req.DateConsultation.Time,
		Motif:            *req.Motif,
		Diagnostic:       req.Diagnostic,
		Prescription:     req.Prescription,
	}
	if err := s.consultations.Create(ctx, &consultation); err != nil {
		return nil, fmt.Errorf("failed to create consultation: %w", err)
	}

	return s.Get(ctx, consultation.ID)
}

func (s *ConsultationService) Update(ctx context.Context, id uuid.UUID, req *dto.ConsultationPayload) (*models.Consultation, error) {
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
	if req.DateConsultation != nil {
		updates["date_consultation"] = req.DateConsultation.Time
	}
	if req.Motif != nil {
		updates["motif"] = *req.Motif
	}
	if req.Diagnostic != nil {
		updates["diagnostic"] = *req.Diagnostic
	}
	if req.Prescription != nil {
		updates["prescription"] = *req.Prescription
	}

	if len(updates) == 0 {
		return current, nil
	}

	if _, err := s.consultations.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("failed to update consultation: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *ConsultationService) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := s.consultations.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete consultation: %w", err)
	}
	if n == 0 {
		return ErrConsultationNotFound
	}
	return nil
}

func (s *ConsultationService) rules(req *dto.ConsultationPayload, partial bool) []validation.Rule {
	requiredText := validation.Required
	if partial {
		requiredText = validation.RequiredIfPresent
	}

	rules := []validation.Rule{
		validation.MaxLen("motif", req.Motif, 255, "The motif may not be longer than 255 characters"),
		requiredText("motif", req.Motif, "The motif is required"),
		validation.WellFormed("date_consultation", dateOK(req.DateConsultation), "The consultation date must be a valid date"),
	}

	if !partial {
		rules = append(rules,
			validation.RequiredID("patient_id", req.PatientID, "The patient is required"),
			validation.RequiredID("user_id", req.UserID, "The doctor is required"),
			validation.RequiredTime("date_consultation", datePtr(req.DateConsultation), "The consultation date is required"),
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
