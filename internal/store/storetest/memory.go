// Package storetest 提供行為與 PostgreSQL store 一致的記憶體實作，僅供測試使用
package storetest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"fashion-store/internal/model"
	"fashion-store/internal/store"
)

// Memory 模擬 UNIQUE(email)、賣家檢查、排序與擁有者刪除等資料庫行為
type Memory struct {
	mu       sync.Mutex
	users    []model.User
	products []model.Product
	nextUser int
	nextProd int
	// Now 產生 created_at，預設 time.Now
	Now func() time.Time
}

func NewMemory() *Memory {
	return &Memory{Now: time.Now}
}

func (m *Memory) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *Memory) CreateUser(_ context.Context, u *model.User) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return nil, store.ErrDuplicate
		}
	}
	m.nextUser++
	u.ID = m.nextUser
	u.CreatedAt = m.Now()
	m.users = append(m.users, *u)
	return u, nil
}

func (m *Memory) ListProducts(_ context.Context, sellerID *int) ([]model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filter(func(p model.Product) bool {
		return sellerID == nil || p.SellerID == *sellerID
	}), nil
}

func (m *Memory) SearchProducts(_ context.Context, q string) ([]model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q = strings.ToLower(q)
	return m.filter(func(p model.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	}), nil
}

func (m *Memory) GetProductByID(_ context.Context, id int) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *Memory) CreateProduct(_ context.Context, p *model.Product) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.isSeller(p.SellerID) {
		return nil, store.ErrNotFound
	}
	m.nextProd++
	p.ID = m.nextProd
	p.CreatedAt = m.Now()
	m.products = append(m.products, *p)
	return p, nil
}

func (m *Memory) DeleteProduct(_ context.Context, id, sellerID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.products {
		if p.ID == id && p.SellerID == sellerID {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// ProductCount 回傳目前商品數
func (m *Memory) ProductCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.products)
}

func (m *Memory) isSeller(userID int) bool {
	for _, u := range m.users {
		if u.ID == userID {
			return u.Role == model.RoleSeller
		}
	}
	return false
}

// filter 依 created_at DESC, id DESC 排序
func (m *Memory) filter(keep func(model.Product) bool) []model.Product {
	out := []model.Product{}
	for _, p := range m.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}
