package storetest

import (
	"context"
	"testing"
	"time"

	"fashion-store/internal/model"
	"fashion-store/internal/store"

	"github.com/stretchr/testify/require"
)

func TestMemoryUsers(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	u, err := m.CreateUser(ctx, &model.User{Email: "a@x.io", Role: model.RoleCustomer})
	require.NoError(t, err)
	require.Equal(t, 1, u.ID)
	require.False(t, u.CreatedAt.IsZero())

	_, err = m.CreateUser(ctx, &model.User{Email: "a@x.io", Role: model.RoleSeller})
	require.ErrorIs(t, err, store.ErrDuplicate)

	got, err := m.GetUserByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = m.GetUserByEmail(ctx, "b@x.io")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemoryProducts(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.Now = func() time.Time { return at }

	seller, err := m.CreateUser(ctx, &model.User{Email: "s@x.io", Role: model.RoleSeller})
	require.NoError(t, err)
	customer, err := m.CreateUser(ctx, &model.User{Email: "c@x.io", Role: model.RoleCustomer})
	require.NoError(t, err)

	_, err = m.CreateProduct(ctx, &model.Product{SellerID: customer.ID, Name: "x"})
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = m.CreateProduct(ctx, &model.Product{SellerID: 99, Name: "x"})
	require.ErrorIs(t, err, store.ErrNotFound)

	hat, err := m.CreateProduct(ctx, &model.Product{SellerID: seller.ID, Name: "Hat", Description: "Warm"})
	require.NoError(t, err)
	capProduct, err := m.CreateProduct(ctx, &model.Product{SellerID: seller.ID, Name: "Cap"})
	require.NoError(t, err)

	// created_at 相同時依 id 由大到小
	list, err := m.ListProducts(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, []int{capProduct.ID, hat.ID}, []int{list[0].ID, list[1].ID})

	list, err = m.ListProducts(ctx, &customer.ID)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)

	found, err := m.SearchProducts(ctx, "WARM")
	require.NoError(t, err)
	require.Len(t, found, 1)

	require.ErrorIs(t, m.DeleteProduct(ctx, hat.ID, customer.ID), store.ErrNotFound)
	require.NoError(t, m.DeleteProduct(ctx, hat.ID, seller.ID))
	_, err = m.GetProductByID(ctx, hat.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.Equal(t, 1, m.ProductCount())
}
