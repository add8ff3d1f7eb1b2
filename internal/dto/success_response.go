package dto

// swagger:model dto.SuccessResponse
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// swagger:model dto.PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}
