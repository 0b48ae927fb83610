package dto

// UserPayload is the create/update body for accounts. Absent fields stay
// nil so partial updates only touch what the client sent.
type UserPayload struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}
