package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side cookie session. The id is regenerated on every
// login so a pre-login id can never survive authentication.
type Session struct {
	ID        string    `gorm:"size:64;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
