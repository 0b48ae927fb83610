package dto

import (
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/validation"
)

// Response is the uniform success envelope.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Count      *int        `json:"count,omitempty"`
	SearchTerm string      `json:"search_term,omitempty"`
	Gender     string      `json:"gender,omitempty"`
}

// ErrorResponse is the uniform failure envelope. Errors carries the
// field map for validation failures, Error a single detail otherwise.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Error   string            `json:"error,omitempty"`
	Errors  validation.Errors `json:"errors,omitempty"`
}

// DeletedResponse is the lightweight delete confirmation.
type DeletedResponse struct {
	DeletedID string `json:"deleted_id"`
}
