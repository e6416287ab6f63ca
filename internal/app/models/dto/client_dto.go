package dto

// CreateClientRequest is the payload for creating a lead
type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}
