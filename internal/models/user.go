package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff and patient account roles.
const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
	RoleNurse   = "nurse"
)

// Roles lists every accepted account role.
var Roles = []string{RoleAdmin, RoleDoctor, RolePatient, RoleNurse}

// User is a clinic account (staff member or patient login).
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Role      string         `gorm:"size:20;not null;default:'doctor'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
