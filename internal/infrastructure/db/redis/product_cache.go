package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bootify/catalog-api/internal/api/metrics"
	"github.com/bootify/catalog-api/internal/core/domain"
)

const cacheTTL = 60 * time.Second

// ProductCache caches product listings in Redis. Keys:
//
//	products:list:active — active-only listing
//	products:list:all    — full listing including soft-deleted records
//
// Listings expire after cacheTTL and are dropped eagerly on every write.
type ProductCache struct {
	client *redis.Client
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

func listKey(activeOnly bool) string {
	if activeOnly {
		return "products:list:active"
	}
	return "products:list:all"
}

// GetList returns the cached listing, or (nil, nil) on a miss.
func (c *ProductCache) GetList(ctx context.Context, activeOnly bool) ([]*domain.Product, error) {
	data, err := c.client.Get(ctx, listKey(activeOnly)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.ProductListCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var products []*domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		// A corrupt entry is treated as a miss; the next SetList overwrites it.
		metrics.ProductListCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}

	metrics.ProductListCacheTotal.WithLabelValues("hit").Inc()
	return products, nil
}

func (c *ProductCache) SetList(ctx context.Context, activeOnly bool, products []*domain.Product) error {
	if products == nil {
		// An empty listing still caches as "[]" so it counts as a hit.
		products = []*domain.Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, listKey(activeOnly), data, cacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops both listing scopes.
func (c *ProductCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, listKey(true), listKey(false)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
