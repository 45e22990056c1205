package ports

import (
	"context"

	"github.com/bootify/catalog-api/internal/core/domain"
)

// ProductCache is a read-through cache for product listings. Implementations
// may fail without affecting correctness: callers treat errors as misses.
type ProductCache interface {
	GetList(ctx context.Context, activeOnly bool) ([]*domain.Product, error)
	SetList(ctx context.Context, activeOnly bool, products []*domain.Product) error
	// Invalidate drops all cached listings. Called after every catalog write.
	Invalidate(ctx context.Context) error
}
