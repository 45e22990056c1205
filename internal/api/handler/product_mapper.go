package handler

import (
	"github.com/bootify/catalog-api/internal/core/domain"
	"github.com/bootify/catalog-api/internal/core/ports"
)

func toProductInput(req productRequest) ports.ProductInput {
	return ports.ProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Active:        req.Active,
	}
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Active:        p.Active,
	}
}

func toProductListResponse(products []*domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}
