package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bootify/catalog-api/internal/core/domain"
	"github.com/bootify/catalog-api/internal/core/ports"
)

type stubCatalogService struct {
	listFn        func(ctx context.Context, activeOnly bool) ([]*domain.Product, error)
	getFn         func(ctx context.Context, id string) (*domain.Product, error)
	createFn      func(ctx context.Context, input ports.ProductInput) (*domain.Product, error)
	updateFn      func(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error)
	softDeleteFn  func(ctx context.Context, id string) error
	updateStockFn func(ctx context.Context, id string, quantity int) (*domain.Product, error)
}

func (s *stubCatalogService) List(ctx context.Context, activeOnly bool) ([]*domain.Product, error) {
	return s.listFn(ctx, activeOnly)
}

func (s *stubCatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubCatalogService) Create(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	return s.createFn(ctx, input)
}

func (s *stubCatalogService) Update(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubCatalogService) SoftDelete(ctx context.Context, id string) error {
	return s.softDeleteFn(ctx, id)
}

func (s *stubCatalogService) UpdateStock(ctx context.Context, id string, quantity int) (*domain.Product, error) {
	return s.updateStockFn(ctx, id, quantity)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestProductHandler_List_ActiveOnly(t *testing.T) {
	e := newEcho()
	stub := &stubCatalogService{
		listFn: func(ctx context.Context, activeOnly bool) ([]*domain.Product, error) {
			if !activeOnly {
				t.Fatalf("expected activeOnly=true")
			}
			return []*domain.Product{{ID: "p1", Name: "Widget", Price: 9.99, StockQuantity: 5, Active: true}}, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/products?activeOnly=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"] != "p1" || resp[0]["stockQuantity"] != float64(5) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	e := newEcho()
	stub := &stubCatalogService{
		getFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/products/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Get(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound to propagate, got %v", err)
	}
}

func TestProductHandler_Create_Success(t *testing.T) {
	e := newEcho()
	stub := &stubCatalogService{
		createFn: func(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
			if input.Name != "Widget" || input.Price != 9.99 || input.StockQuantity != 5 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Product{ID: "p1", Name: input.Name, Price: input.Price, StockQuantity: input.StockQuantity, Active: true}, nil
		},
	}
	handler := NewProductHandler(stub)

	body := strings.NewReader(`{"name":"Widget","price":9.99,"stockQuantity":5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/products/create", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "p1" || resp["active"] != true {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProductHandler_Create_ValidationFailure(t *testing.T) {
	e := newEcho()
	stub := &stubCatalogService{
		createFn: func(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
			t.Fatalf("service must not be called on invalid payload")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	body := strings.NewReader(`{"name":"","price":-1,"stockQuantity":-1}`)
	req := httptest.NewRequest(http.MethodPost, "/api/products/create", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !strings.Contains(resp["error"], "name is required") {
		t.Fatalf("error must enumerate field violations: %q", resp["error"])
	}
}

func TestProductHandler_Update_Success(t *testing.T) {
	e := newEcho()
	stub := &stubCatalogService{
		updateFn: func(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
			if id != "p1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.Product{ID: id, Name: input.Name, Price: input.Price, StockQuantity: input.StockQuantity, Active: true}, nil
		},
	}
	handler := NewProductHandler(stub)

	body := strings.NewReader(`{"name":"Widget Pro","price":19.99,"stockQuantity":2}`)
	req := httptest.NewRequest(http.MethodPut, "/api/products/p1/update", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Delete_Success(t *testing.T) {
	e := newEcho()
	stub := &stubCatalogService{
		softDeleteFn: func(ctx context.Context, id string) error {
			if id != "p1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/products/p1/delete", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestProductHandler_UpdateStock_Success(t *testing.T) {
	e := newEcho()
	stub := &stubCatalogService{
		updateStockFn: func(ctx context.Context, id string, quantity int) (*domain.Product, error) {
			if id != "p1" || quantity != 3 {
				t.Fatalf("unexpected args: %s %d", id, quantity)
			}
			return &domain.Product{ID: id, Name: "Widget", Price: 9.99, StockQuantity: quantity, Active: true}, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/api/products/p1/stock?quantity=3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := handler.UpdateStock(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["stockQuantity"] != float64(3) || resp["name"] != "Widget" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProductHandler_UpdateStock_NonInteger(t *testing.T) {
	e := newEcho()
	handler := NewProductHandler(&stubCatalogService{})

	req := httptest.NewRequest(http.MethodPatch, "/api/products/p1/stock?quantity=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := handler.UpdateStock(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
