package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/models"
)

// ConsultationRepository defines persistence operations for consultations.
// Reads preload the related patient and doctor rows.
type ConsultationRepository interface {
	List(ctx context.Context) ([]models.Consultation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Consultation, error)
	Create(ctx context.Context, consultation *models.Consultation) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type consultationRepository struct {
	db *gorm.DB
}

// NewConsultationRepository builds a GORM-backed repository.
func NewConsultationRepository(db *gorm.DB) ConsultationRepository {
	return &consultationRepository{db: db}
}

func (r *consultationRepository) List(ctx context.Context) ([]models.Consultation, error) {
	var consultations []models.Consultation
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Order("date_consultation DESC").
		Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

func (r *consultationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Consultation, error) {
	var consultation models.Consultation
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		First(&consultation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) Create(ctx context.Context, consultation *models.Consultation) error {
	return r.db.WithContext(ctx).Create(consultation).Error
}

func (r *consultationRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Consultation{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *consultationRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Consultation{})
	return result.RowsAffected, result.Error
}
