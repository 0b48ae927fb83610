package dto

// PatientPayload is the create/update body for patient records.
type PatientPayload struct {
	LastName              *string `json:"last_name"`
	FirstName             *string `json:"first_name"`
	BirthDate             *Date   `json:"birth_date"`
	Gender                *string `json:"gender"`
	Address               *string `json:"address"`
	Phone                 *string `json:"phone"`
	Email                 *string `json:"email"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`
}
