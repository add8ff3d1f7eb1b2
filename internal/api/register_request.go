package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Email        string `json:"email" validate:"required" example:"s1@x.com"`
	Password     string `json:"password" validate:"required" example:"pw1"`
	Role         string `json:"role" validate:"required,oneof=customer seller" example:"seller"`
	BusinessName string `json:"businessName" example:"Shop"`
}
