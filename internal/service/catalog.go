// File: internal/service/catalog.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fashion-store/internal/cache"
	"fashion-store/internal/events"
	"fashion-store/internal/logging"
	"fashion-store/internal/model"
	"fashion-store/internal/store"
	"fashion-store/internal/worker"

	"github.com/redis/go-redis/v9"
)

const (
	// catalogVersionKey 每次商品寫入後遞增，讀取快取的 key 都帶上目前版本
	catalogVersionKey = "catalog:version"
	publishTimeout    = 5 * time.Second
)

// ProductInput 為建立商品時客戶端可提供的欄位
type ProductInput struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Stock       int
}

// Catalog 實作商品的公開讀取與賣家寫入政策
type Catalog struct {
	products ProductStore
	cache    cache.Cache
	cacheTTL time.Duration
	events   events.Publisher
	pool     worker.Pool
	now      func() time.Time
}

// NewCatalog cache、events、pool 皆可為 nil，此時略過快取或事件發佈
func NewCatalog(products ProductStore, c cache.Cache, cacheTTL time.Duration, pub events.Publisher, pool worker.Pool) *Catalog {
	return &Catalog{
		products: products,
		cache:    c,
		cacheTTL: cacheTTL,
		events:   pub,
		pool:     pool,
		now:      time.Now,
	}
}

// List 公開列出商品，sellerID 非 nil 時只列該賣家
func (c *Catalog) List(ctx context.Context, sellerID *int) ([]model.Product, error) {
	suffix := "list:all"
	if sellerID != nil {
		suffix = fmt.Sprintf("list:seller:%d", *sellerID)
	}
	return c.cached(ctx, suffix, func() ([]model.Product, error) {
		return c.products.ListProducts(ctx, sellerID)
	})
}

// Search 以子字串比對 name 或 description；空字串回傳空結果
func (c *Catalog) Search(ctx context.Context, q string) ([]model.Product, error) {
	if q == "" {
		return []model.Product{}, nil
	}
	return c.cached(ctx, "search:"+q, func() ([]model.Product, error) {
		return c.products.SearchProducts(ctx, q)
	})
}

// Create 僅允許賣家建立商品，seller_id 一律取自 actor
func (c *Catalog) Create(ctx context.Context, actor *Claims, in ProductInput) (*model.Product, error) {
	if actor == nil || actor.Role != model.RoleSeller {
		return nil, ErrForbidden
	}
	if in.Name == "" || in.Price < 0 || in.Stock < 0 {
		return nil, ErrValidation
	}

	p, err := c.products.CreateProduct(ctx, &model.Product{
		SellerID:    actor.UserID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
	})
	if err != nil {
		// 使用者不存在或已不是賣家
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("create product: %w", err)
	}

	c.invalidate(ctx)
	c.publish(ctx, events.ProductEvent{
		Type:      events.ProductCreated,
		ProductID: p.ID,
		SellerID:  p.SellerID,
		Name:      p.Name,
	})
	return p, nil
}

// Delete 僅允許商品擁有者（賣家）刪除
func (c *Catalog) Delete(ctx context.Context, actor *Claims, productID int) error {
	if actor == nil || actor.Role != model.RoleSeller {
		return ErrForbidden
	}

	p, err := c.products.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if p.SellerID != actor.UserID {
		return ErrForbidden
	}

	if err := c.products.DeleteProduct(ctx, productID, actor.UserID); err != nil {
		// 查詢後被併發刪除
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete product: %w", err)
	}

	c.invalidate(ctx)
	c.publish(ctx, events.ProductEvent{
		Type:      events.ProductDeleted,
		ProductID: p.ID,
		SellerID:  p.SellerID,
		Name:      p.Name,
	})
	return nil
}

func (c *Catalog) cached(ctx context.Context, suffix string, load func() ([]model.Product, error)) ([]model.Product, error) {
	key, ok := c.cacheKey(ctx, suffix)
	if ok {
		raw, err := c.cache.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var products []model.Product
			if err := json.Unmarshal(raw, &products); err == nil && products != nil {
				return products, nil
			}
		case !errors.Is(err, redis.Nil):
			logging.FromContext(ctx).Warn("catalog cache read failed", "key", key, "error", err)
		}
	}

	products, err := load()
	if err != nil {
		return nil, err
	}

	if ok {
		data, err := json.Marshal(products)
		if err == nil {
			err = c.cache.Set(ctx, key, data, c.cacheTTL).Err()
		}
		if err != nil {
			logging.FromContext(ctx).Warn("catalog cache write failed", "key", key, "error", err)
		}
	}
	return products, nil
}

func (c *Catalog) cacheKey(ctx context.Context, suffix string) (string, bool) {
	if c.cache == nil {
		return "", false
	}
	version, err := c.cache.Get(ctx, catalogVersionKey).Result()
	if errors.Is(err, redis.Nil) {
		version = "0"
	} else if err != nil {
		logging.FromContext(ctx).Warn("catalog cache version read failed", "error", err)
		return "", false
	}
	return "catalog:v" + version + ":" + suffix, true
}

func (c *Catalog) invalidate(ctx context.Context) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Incr(ctx, catalogVersionKey).Err(); err != nil {
		logging.FromContext(ctx).Error("catalog cache invalidation failed", "error", err)
	}
}

// publish 交給 worker pool 非同步發佈，失敗只記錄 log
func (c *Catalog) publish(ctx context.Context, ev events.ProductEvent) {
	if c.events == nil || c.pool == nil {
		return
	}
	ev.OccurredAt = c.now().UTC()
	log := logging.FromContext(ctx)
	submitted := c.pool.Submit(func() {
		pctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := c.events.Publish(pctx, ev); err != nil {
			log.Warn("product event publish failed", "type", ev.Type, "product_id", ev.ProductID, "error", err)
		}
	})
	if !submitted {
		log.Warn("product event dropped, worker pool stopped", "type", ev.Type, "product_id", ev.ProductID)
	}
}
