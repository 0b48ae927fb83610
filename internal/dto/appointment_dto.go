package dto

import "github.com/google/uuid"

// AppointmentPayload is the create/update body for appointments.
type AppointmentPayload struct {
	PatientID *uuid.UUID `json:"patient_id"`
	UserID    *uuid.UUID `json:"user_id"`
	DateTime  *Date      `json:"date_time"`
	Reason    *string    `json:"reason"`
	Status    *string    `json:"status"`
}
