package ports

import (
	"context"

	"github.com/bootify/catalog-api/internal/core/domain"
)

// ProductInput carries all data for create and update operations. Active
// defaults to true on create when the caller leaves it unset.
type ProductInput struct {
	Name          string
	Description   string
	Price         float64
	StockQuantity int
	Active        *bool
}

// CatalogService defines the product lifecycle use cases. Role enforcement
// happens in the transport layer before any of these are invoked.
type CatalogService interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, input ProductInput) (*domain.Product, error)
	SoftDelete(ctx context.Context, id string) error
	UpdateStock(ctx context.Context, id string, quantity int) (*domain.Product, error)
}
