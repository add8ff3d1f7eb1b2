// Package store 以 database.DB 實作使用者與商品的持久化
package store

import (
	"context"
	"errors"

	"fashion-store/internal/database"
	"fashion-store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound 查無資料
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate 違反唯一性限制
	ErrDuplicate = errors.New("duplicate record")
)

const uniqueViolation = "23505"

// classify 將 pgx 錯誤轉為 store 層的哨兵錯誤，其餘原樣回傳
func classify(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}

// Postgres 將本套件的函式綁定到單一 database.DB，供服務層以介面注入
type Postgres struct {
	DB database.DB
}

func NewPostgres(db database.DB) *Postgres {
	return &Postgres{DB: db}
}

func (s *Postgres) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return GetUserByEmail(ctx, s.DB, email)
}

func (s *Postgres) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	return CreateUser(ctx, s.DB, u)
}

func (s *Postgres) ListProducts(ctx context.Context, sellerID *int) ([]model.Product, error) {
	return ListProducts(ctx, s.DB, sellerID)
}

func (s *Postgres) SearchProducts(ctx context.Context, q string) ([]model.Product, error) {
	return SearchProducts(ctx, s.DB, q)
}

func (s *Postgres) GetProductByID(ctx context.Context, id int) (*model.Product, error) {
	return GetProductByID(ctx, s.DB, id)
}

func (s *Postgres) CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	return CreateProduct(ctx, s.DB, p)
}

func (s *Postgres) DeleteProduct(ctx context.Context, id, sellerID int) error {
	return DeleteProduct(ctx, s.DB, id, sellerID)
}
