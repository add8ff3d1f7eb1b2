package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"fashion-store/internal/database"
	"fashion-store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func fillProduct(dest []any, p model.Product) {
	*dest[0].(*int) = p.ID
	*dest[1].(*int) = p.SellerID
	*dest[2].(*string) = p.Name
	*dest[3].(*string) = p.Description
	*dest[4].(*float64) = p.Price
	*dest[5].(*int) = p.Stock
	*dest[6].(*string) = p.Category
	*dest[7].(*time.Time) = p.CreatedAt
}

type fakeProductRow struct {
	scanErr error
	product model.Product
}

func (r *fakeProductRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	switch len(dest) {
	case 8:
		fillProduct(dest, r.product)
	case 2:
		*dest[0].(*int) = r.product.ID
		*dest[1].(*time.Time) = r.product.CreatedAt
	default:
		panic("fakeProductRow.Scan: unexpected dest count")
	}
	return nil
}

// fakeRows 實作 pgx.Rows，用於模擬多筆掃描行為。
type fakeRows struct {
	data    []model.Product
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	fillProduct(dest, r.data[r.idx])
	r.idx++
	return nil
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

func queryDB(rows *fakeRows, qErr error, gotSQL *string, gotArgs *[]any) *database.FakeDB {
	return &database.FakeDB{
		QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			*gotSQL = sql
			*gotArgs = args
			if qErr != nil {
				return nil, qErr
			}
			return rows, nil
		},
	}
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	data := []model.Product{
		{ID: 2, SellerID: 1, Name: "Shirt", Price: 20, Stock: 1, CreatedAt: now},
		{ID: 1, SellerID: 1, Name: "Hat", Price: 10, Stock: 5, CreatedAt: now.Add(-time.Minute)},
	}

	t.Run("all", func(t *testing.T) {
		var sql string
		var args []any
		rows := &fakeRows{data: data}
		got, err := ListProducts(ctx, queryDB(rows, nil, &sql, &args), nil)
		require.NoError(t, err)
		require.Equal(t, data, got)
		require.Empty(t, args)
		require.NotContains(t, sql, "WHERE")
		require.Contains(t, sql, "ORDER BY created_at DESC, id DESC")
		require.True(t, rows.closed)
	})

	t.Run("by seller", func(t *testing.T) {
		var sql string
		var args []any
		seller := 1
		_, err := ListProducts(ctx, queryDB(&fakeRows{}, nil, &sql, &args), &seller)
		require.NoError(t, err)
		require.Contains(t, sql, "WHERE seller_id = $1")
		require.Equal(t, []any{1}, args)
	})

	t.Run("empty is non-nil", func(t *testing.T) {
		var sql string
		var args []any
		got, err := ListProducts(ctx, queryDB(&fakeRows{}, nil, &sql, &args), nil)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		var sql string
		var args []any
		_, err := ListProducts(ctx, queryDB(nil, errors.New("q"), &sql, &args), nil)
		require.Error(t, err)
	})

	t.Run("scan error", func(t *testing.T) {
		var sql string
		var args []any
		_, err := ListProducts(ctx, queryDB(&fakeRows{data: data, scanErr: errors.New("s")}, nil, &sql, &args), nil)
		require.Error(t, err)
	})

	t.Run("rows error", func(t *testing.T) {
		var sql string
		var args []any
		_, err := ListProducts(ctx, queryDB(&fakeRows{err: errors.New("r")}, nil, &sql, &args), nil)
		require.Error(t, err)
	})
}

func TestSearchProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("substring pattern", func(t *testing.T) {
		var sql string
		var args []any
		_, err := SearchProducts(ctx, queryDB(&fakeRows{}, nil, &sql, &args), "shirt")
		require.NoError(t, err)
		require.Contains(t, sql, "name ILIKE $1 OR description ILIKE $1")
		require.Equal(t, []any{"%shirt%"}, args)
	})

	t.Run("wildcards escaped", func(t *testing.T) {
		var sql string
		var args []any
		_, err := SearchProducts(ctx, queryDB(&fakeRows{}, nil, &sql, &args), `50%_off\`)
		require.NoError(t, err)
		require.Equal(t, []any{`%50\%\_off\\%`}, args)
	})

	t.Run("query error", func(t *testing.T) {
		var sql string
		var args []any
		_, err := SearchProducts(ctx, queryDB(nil, errors.New("q"), &sql, &args), "x")
		require.Error(t, err)
	})
}

func TestGetProductByID(t *testing.T) {
	ctx := context.Background()
	p := model.Product{ID: 3, SellerID: 9, Name: "Hat"}

	got, err := GetProductByID(ctx, &database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row { return &fakeProductRow{product: p} },
	}, 3)
	require.NoError(t, err)
	require.Equal(t, 9, got.SellerID)

	_, err = GetProductByID(ctx, &database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row { return &fakeProductRow{scanErr: pgx.ErrNoRows} },
	}, 4)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	var sql string
	var args []any
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, s string, a ...any) pgx.Row {
			sql, args = s, a
			return &fakeProductRow{product: model.Product{ID: 11, CreatedAt: now}}
		},
	}
	p, err := CreateProduct(ctx, db, &model.Product{SellerID: 1, Name: "Hat", Price: 10, Stock: 5})
	require.NoError(t, err)
	require.Equal(t, 11, p.ID)
	require.Equal(t, now, p.CreatedAt)
	require.Contains(t, sql, "role = 'seller'")
	require.Equal(t, []any{1, "Hat", "", 10.0, 5, ""}, args)

	// 非賣家：INSERT ... SELECT 不回傳任何列
	_, err = CreateProduct(ctx, &database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row { return &fakeProductRow{scanErr: pgx.ErrNoRows} },
	}, &model.Product{SellerID: 2})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()

	var args []any
	err := DeleteProduct(ctx, &database.FakeDB{
		ExecFn: func(_ context.Context, _ string, a ...any) (pgconn.CommandTag, error) {
			args = a
			return pgconn.NewCommandTag("DELETE 1"), nil
		},
	}, 5, 1)
	require.NoError(t, err)
	require.Equal(t, []any{5, 1}, args)

	err = DeleteProduct(ctx, &database.FakeDB{
		ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 0"), nil
		},
	}, 5, 1)
	require.ErrorIs(t, err, ErrNotFound)

	err = DeleteProduct(ctx, &database.FakeDB{
		ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("exec")
		},
	}, 5, 1)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}
