package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/validation"
)

var ErrPatientNotFound = errors.New("patient not found")

// PatientService manages demographic records.
type PatientService struct {
	patients repository.PatientRepository
}

func NewPatientService(patients repository.PatientRepository) *PatientService {
	return &PatientService{patients: patients}
}

func (s *PatientService) List(ctx context.Context) ([]models.Patient, error) {
	return s.patients.List(ctx)
}

func (s *PatientService) Get(ctx context.Context, id uuid.UUID) (*models.Patient, error) {
	patient, err := s.patients.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return patient, nil
}

func (s *PatientService) Create(ctx context.Context, req *dto.PatientPayload) (*models.Patient, error) {
	if err := validation.Apply(ctx, s.rules(req, uuid.Nil, false)...); err != nil {
		return nil, err
	}

	patient := models.Patient{
		ID:                    uuid.New(),
		LastName:              *req.LastName,
		FirstName:             *req.FirstName,
		BirthDate:             req.BirthDate.Time,
		Gender:                *req.Gender,
		Address:               *req.Address,
		Phone:                 *req.Phone,
		Email:                 normalizeEmail(req.Email),
		EmergencyContactName:  *req.EmergencyContactName,
		EmergencyContactPhone: *req.EmergencyContactPhone,
	}
	if err := s.patients.Create(ctx, &patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	return &patient, nil
}

func (s *PatientService) Update(ctx context.Context, id uuid.UUID, req *dto.PatientPayload) (*models.Patient, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validation.Apply(ctx, s.rules(req, id, true)...); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.BirthDate != nil {
		updates["birth_date"] = req.BirthDate.Time
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = normalizeEmail(req.Email)
	}
	if req.EmergencyContactName != nil {
		updates["emergency_contact_name"] = *req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		updates["emergency_contact_phone"] = *req.EmergencyContactPhone
	}

	if len(updates) == 0 {
		return current, nil
	}

	if _, err := s.patients.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *PatientService) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := s.patients.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	if n == 0 {
		return ErrPatientNotFound
	}
	return nil
}

// Search matches last name, first name or email, case-insensitively.
func (s *PatientService) Search(ctx context.Context, term string) ([]models.Patient, error) {
	err := validation.Apply(ctx,
		validation.Required("query", &term, "The search term is required"),
		validation.MinLen("query", &term, 2, "The search term must be at least 2 characters"),
		validation.MaxLen("query", &term, 100, "The search term may not be longer than 100 characters"),
	)
	if err != nil {
		return nil, err
	}
	return s.patients.Search(ctx, term)
}

func (s *PatientService) ByGender(ctx context.Context, gender string) ([]models.Patient, error) {
	err := validation.Apply(ctx,
		validation.Required("gender", &gender, "The gender field is required"),
		validation.OneOf("gender", &gender, models.Genders, "The gender must be M or F"),
	)
	if err != nil {
		return nil, err
	}
	return s.patients.ByGender(ctx, gender)
}

func (s *PatientService) rules(req *dto.PatientPayload, exclude uuid.UUID, partial bool) []validation.Rule {
	required := validation.Required
	if partial {
		required = validation.RequiredIfPresent
	}

	rules := []validation.Rule{
		required("last_name", req.LastName, "The last name is required"),
		validation.MaxLen("last_name", req.LastName, 100, "The last name may not be longer than 100 characters"),
		required("first_name", req.FirstName, "The first name is required"),
		validation.MaxLen("first_name", req.FirstName, 100, "The first name may not be longer than 100 characters"),
		validation.WellFormed("birth_date", dateOK(req.BirthDate), "The birth date must be a valid date"),
		validation.BeforeNow("birth_date", datePtr(req.BirthDate), "The birth date must be before today"),
		required("gender", req.Gender, "The gender field is required"),
		validation.OneOf("gender", req.Gender, models.Genders, "The gender must be M or F"),
		required("address", req.Address, "The address is required"),
		validation.MaxLen("address", req.Address, 255, "The address may not be longer than 255 characters"),
		required("phone", req.Phone, "The phone number is required"),
		validation.MaxLen("phone", req.Phone, 20, "The phone number may not be longer than 20 characters"),
		validation.Email("email", req.Email, "The email must be a valid email address"),
		validation.MaxLen("email", req.Email, 100, "The email may not be longer than 100 characters"),
		required("emergency_contact_name", req.EmergencyContactName, "The emergency contact name is required"),
		validation.MaxLen("emergency_contact_name", req.EmergencyContactName, 100, "The emergency contact name may not be longer than 100 characters"),
		required("emergency_contact_phone", req.EmergencyContactPhone, "The emergency contact phone is required"),
		validation.MaxLen("emergency_contact_phone", req.EmergencyContactPhone, 20, "The emergency contact phone may not be longer than 20 characters"),
	}

	if !partial {
		rules = append(rules, validation.RequiredTime("birth_date", datePtr(req.BirthDate), "The birth date is required"))
	}

	if req.Email != nil && *req.Email != "" {
		email := *req.Email
		rules = append(rules, validation.Unique("email", "This email is already used by another patient", func(ctx context.Context) (bool, error) {
			return s.patients.EmailAvailable(ctx, email, exclude)
		}))
	}

	return rules
}

func normalizeEmail(email *string) *string {
	if email == nil || *email == "" {
		return nil
	}
	return email
}

func datePtr(d *dto.Date) *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}

func dateOK(d *dto.Date) bool {
	return d == nil || !d.Invalid()
}
