package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Accepted patient genders.
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// Genders lists the accepted gender codes.
var Genders = []string{GenderMale, GenderFemale}

// Patient is a demographic record. Email is optional but unique when set;
// the unique index is the source of truth for concurrent creates.
type Patient struct {
	ID                    uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LastName              string         `gorm:"size:100;not null;index" json:"last_name"`
	FirstName             string         `gorm:"size:100;not null" json:"first_name"`
	BirthDate             time.Time      `gorm:"type:date;not null" json:"birth_date"`
	Gender                string         `gorm:"size:1;not null" json:"gender"`
	Address               string         `gorm:"size:255;not null" json:"address"`
	Phone                 string         `gorm:"size:20;not null" json:"phone"`
	Email                 *string        `gorm:"size:100;uniqueIndex" json:"email"`
	EmergencyContactName  string         `gorm:"size:100;not null" json:"emergency_contact_name"`
	EmergencyContactPhone string         `gorm:"size:20;not null" json:"emergency_contact_phone"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`
}
