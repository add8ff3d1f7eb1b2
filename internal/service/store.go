package service

import (
	"context"

	"fashion-store/internal/model"
)

// UserStore 為帳號流程所需的憑證儲存
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, u *model.User) (*model.User, error)
}

// ProductStore 為商品存取政策所需的儲存
type ProductStore interface {
	ListProducts(ctx context.Context, sellerID *int) ([]model.Product, error)
	SearchProducts(ctx context.Context, q string) ([]model.Product, error)
	GetProductByID(ctx context.Context, id int) (*model.Product, error)
	CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id, sellerID int) error
}
