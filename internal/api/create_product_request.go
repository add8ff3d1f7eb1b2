package api

// CreateProductRequest seller_id 不由客戶端提供，一律取自 token
// swagger:model api.CreateProductRequest
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required" example:"Hat"`
	Description string  `json:"description" example:"Wool hat"`
	Price       float64 `json:"price" validate:"gte=0" example:"10"`
	Stock       int     `json:"stock" validate:"gte=0" example:"5"`
	Category    string  `json:"category" example:"accessories"`
}
