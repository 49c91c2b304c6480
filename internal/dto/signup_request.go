// File: internal/dto/signup_request.go
package dto

// swagger:model dto.SignupRequest
type SignupRequest struct {
	Email     string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password  string `json:"password" validate:"required,min=8" example:"Secret123!"`
	FirstName string `json:"first_name" validate:"required" example:"Alice"`
	LastName  string `json:"last_name" validate:"required" example:"Chen"`
}
