package store

import (
	"context"
	"fmt"
	"strings"

	"fashion-store/internal/database"
	"fashion-store/internal/model"

	"github.com/jackc/pgx/v5"
)

const (
	productColumns = `id, seller_id, name, description, price, stock, category, created_at`
	productOrder   = ` ORDER BY created_at DESC, id DESC`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func scanProduct(row interface{ Scan(...any) error }) (*model.Product, error) {
	p := &model.Product{}
	if err := row.Scan(
		&p.ID,
		&p.SellerID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Stock,
		&p.Category,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return p, nil
}

func collectProducts(rows pgx.Rows) ([]model.Product, error) {
	defer rows.Close()
	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

// ListProducts 依建立時間新到舊列出商品；sellerID 非 nil 時只列該賣家
func ListProducts(ctx context.Context, db database.DB, sellerID *int) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	var args []any
	if sellerID != nil {
		query += ` WHERE seller_id = $1`
		args = append(args, *sellerID)
	}
	rows, err := db.Query(ctx, query+productOrder, args...)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	products, err := collectProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	return products, nil
}

// SearchProducts 以不分大小寫的子字串比對 name 或 description
func SearchProducts(ctx context.Context, db database.DB, q string) ([]model.Product, error) {
	pattern := "%" + likeEscaper.Replace(q) + "%"
	rows, err := db.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE name ILIKE $1 OR description ILIKE $1`+productOrder,
		pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("SearchProducts: %w", err)
	}
	products, err := collectProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("SearchProducts: %w", err)
	}
	return products, nil
}

func GetProductByID(ctx context.Context, db database.DB, id int) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`,
		id,
	)
	p, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("GetProductByID: %w", classify(err))
	}
	return p, nil
}

// CreateProduct 僅在 seller_id 指向 role = 'seller' 的使用者時寫入，否則回傳 ErrNotFound
func CreateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO products (seller_id, name, description, price, stock, category)
		 SELECT $1::int, $2::text, $3::text, $4::numeric, $5::int, $6::text
		 WHERE EXISTS (SELECT 1 FROM users WHERE id = $1 AND role = 'seller')
		 RETURNING id, created_at`,
		p.SellerID,
		p.Name,
		p.Description,
		p.Price,
		p.Stock,
		p.Category,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateProduct: %w", classify(err))
	}
	return p, nil
}

// DeleteProduct 刪除屬於 sellerID 的商品；沒有符合的列時回傳 ErrNotFound
func DeleteProduct(ctx context.Context, db database.DB, id, sellerID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM products WHERE id = $1 AND seller_id = $2`,
		id,
		sellerID,
	)
	if err != nil {
		return fmt.Errorf("DeleteProduct: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteProduct: %w", ErrNotFound)
	}
	return nil
}
