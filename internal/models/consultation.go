package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Consultation is a visit record tied to one patient and one doctor.
type Consultation struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PatientID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"patient_id"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	DateConsultation time.Time      `gorm:"not null;index" json:"date_consultation"`
	Motif            string         `gorm:"size:255;not null" json:"motif"`
	Diagnostic       *string        `gorm:"type:text" json:"diagnostic"`
	Prescription     *string        `gorm:"type:text" json:"prescription"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	Patient *Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Doctor  *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"doctor,omitempty"`
}
