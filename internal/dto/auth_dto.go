package dto

import "github.com/ahmetcoskunkizilkaya/clinic-backend/internal/models"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the authenticated identity. Token is set only by
// the bearer-token strategy; the session strategy answers with a cookie.
type LoginResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
	Token   string       `json:"token,omitempty"`
}
