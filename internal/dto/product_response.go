// File: internal/dto/product_response.go
package dto

import (
	"time"

	"fashion-store/internal/model"
)

// swagger:model dto.ProductResponse
type ProductResponse struct {
	ID          int       `json:"id" example:"1"`
	SellerID    int       `json:"seller_id" example:"1"`
	Name        string    `json:"name" example:"Hat"`
	Description string    `json:"description" example:"Wool hat"`
	Price       float64   `json:"price" example:"10"`
	Stock       int       `json:"stock" example:"5"`
	Category    string    `json:"category" example:"accessories"`
	CreatedAt   time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

// NewProductList 永遠回傳非 nil 的 slice，序列化為 [] 而非 null
func NewProductList(products []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductResponse{
			ID:          p.ID,
			SellerID:    p.SellerID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Stock:       p.Stock,
			Category:    p.Category,
			CreatedAt:   p.CreatedAt,
		})
	}
	return out
}
