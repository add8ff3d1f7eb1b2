package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"s1@x.com"`
	Password string `json:"password" validate:"required" example:"pw1"`
}
