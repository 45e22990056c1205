package ports

import (
	"context"

	"github.com/bootify/catalog-api/internal/core/domain"
)

// ProductFields carries the mutable fields of a product. Update is a full
// replace of these fields, never a partial merge.
type ProductFields struct {
	Name          string
	Description   string
	Price         float64
	StockQuantity int
	Active        bool
}

// ProductRepository defines persistence operations for products. The storage
// layer guarantees single-document atomicity for SetInactive, SetStock and
// Replace. There is deliberately no hard-delete operation.
type ProductRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// Replace overwrites all mutable fields and returns the updated record.
	Replace(ctx context.Context, id string, fields ProductFields) (*domain.Product, error)
	// SetInactive flips the active flag off, keeping the record in place.
	SetInactive(ctx context.Context, id string) error
	// SetStock updates only the stock quantity and returns the updated record.
	SetStock(ctx context.Context, id string, quantity int) (*domain.Product, error)
	Count(ctx context.Context) (int64, error)
}
