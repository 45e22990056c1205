package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bootify/catalog-api/internal/core/domain"
	"github.com/bootify/catalog-api/internal/core/ports"
)

// CatalogService implements the product lifecycle. Listings go through a
// cache-aside read path; every write invalidates the cache and records a
// change in the journal. Cache and journal failures never fail a request.
type CatalogService struct {
	repo    ports.ProductRepository
	cache   ports.ProductCache
	journal ports.ChangeJournal
	logger  zerolog.Logger
}

func NewCatalogService(repo ports.ProductRepository, cache ports.ProductCache, journal ports.ChangeJournal, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, journal: journal, logger: logger}
}

func (s *CatalogService) List(ctx context.Context, activeOnly bool) ([]*domain.Product, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetList(ctx, activeOnly); err == nil && cached != nil {
			return cached, nil
		}
	}

	products, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, activeOnly, products); err != nil {
			s.logger.Warn().Err(err).Bool("active_only", activeOnly).Msg("failed to cache product listing")
		}
	}
	return products, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	if err := domain.ValidateProduct(input.Name, input.Description, input.Price, input.StockQuantity); err != nil {
		return nil, err
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	now := time.Now().UTC()
	created, err := s.repo.Insert(ctx, &domain.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		Active:        active,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	s.afterWrite(ctx, created.ID, "create")
	return created, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
	if err := domain.ValidateProduct(input.Name, input.Description, input.Price, input.StockQuantity); err != nil {
		return nil, err
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	updated, err := s.repo.Replace(ctx, id, ports.ProductFields{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		Active:        active,
	})
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, id, "update")
	return updated, nil
}

func (s *CatalogService) SoftDelete(ctx context.Context, id string) error {
	if err := s.repo.SetInactive(ctx, id); err != nil {
		return err
	}

	s.afterWrite(ctx, id, "soft_delete")
	return nil
}

func (s *CatalogService) UpdateStock(ctx context.Context, id string, quantity int) (*domain.Product, error) {
	if err := domain.ValidateStockQuantity(quantity); err != nil {
		return nil, err
	}

	updated, err := s.repo.SetStock(ctx, id, quantity)
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, id, "update_stock")
	return updated, nil
}

func (s *CatalogService) afterWrite(ctx context.Context, id, operation string) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn().Err(err).Str("operation", operation).Msg("failed to invalidate product cache")
		}
	}
	if s.journal != nil {
		s.journal.Enqueue(ports.ChangeRecord{
			ProductID: id,
			Operation: operation,
			Actor:     usernameFromContext(ctx),
			Timestamp: time.Now().UTC(),
		})
	}
}

type contextKey string

// UsernameContextKey carries the authenticated username through the request
// context for change attribution.
const UsernameContextKey contextKey = "auth.username"

func usernameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(UsernameContextKey).(string)
	return name
}
