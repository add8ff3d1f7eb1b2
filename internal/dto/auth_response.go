// File: internal/dto/auth_response.go
package dto

// swagger:model dto.AuthResponse
type AuthResponse struct {
	Token  string `json:"token" example:"eyJhbGciOi..."`
	Role   string `json:"role" example:"seller"`
	UserID int    `json:"userId" example:"1"`
}
