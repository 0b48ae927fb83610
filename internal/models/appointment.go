package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment statuses.
const (
	StatusConfirmed = "confirmed"
	StatusCanceled  = "canceled"
	StatusPostponed = "postponed"
)

// AppointmentStatuses lists the accepted appointment statuses.
var AppointmentStatuses = []string{StatusConfirmed, StatusCanceled, StatusPostponed}

// Appointment is a scheduled visit tied to one patient and one doctor.
type Appointment struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PatientID uuid.UUID      `gorm:"type:uuid;not null;index" json:"patient_id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	DateTime  time.Time      `gorm:"not null;index" json:"date_time"`
	Reason    string         `gorm:"size:255;not null" json:"reason"`
	Status    string         `gorm:"size:20;not null;default:'confirmed'" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Patient *Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Doctor  *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"doctor,omitempty"`
}
