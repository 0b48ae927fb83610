package dto

import "github.com/google/uuid"

// ConsultationPayload is the create/update body for consultations.
type ConsultationPayload struct {
	PatientID        *uuid.UUID `json:"patient_id"`
	UserID           *uuid.UUID `json:"user_id"`
	DateConsultation *Date      `json:"date_consultation"`
	Motif            *string    `json:"motif"`
	Diagnostic       *string    `json:"diagnostic"`
	Prescription     *string    `json:"prescription"`
}
