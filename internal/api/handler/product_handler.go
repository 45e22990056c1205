package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bootify/catalog-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service ports.CatalogService
}

func NewProductHandler(service ports.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /api/products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        activeOnly  query     bool  false  "Return only active products"
// @Success      200         {array}   productResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	activeOnly, _ := strconv.ParseBool(c.QueryParam("activeOnly"))

	products, err := h.service.List(c.Request().Context(), activeOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductListResponse(products))
}

// Get handles GET /api/products/:id. Soft-deleted products are returned too.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Create handles POST /api/products/create. ADMIN only.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product fields"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/products/create [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	product, err := h.service.Create(requestContext(c), toProductInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// Update handles PUT /api/products/:id/update. ADMIN only. All mutable
// fields are replaced with the request payload.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Product fields"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/products/{id}/update [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	product, err := h.service.Update(requestContext(c), c.Param("id"), toProductInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Delete handles DELETE /api/products/:id/delete. ADMIN only. The product is
// marked inactive and kept; there is no hard-delete endpoint.
//
// @Summary      Soft-delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id}/delete [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.SoftDelete(requestContext(c), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateStock handles PATCH /api/products/:id/stock?quantity=n. ADMIN only.
//
// @Summary      Update product stock
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string  true  "Product id"
// @Param        quantity  query     int     true  "New stock quantity"
// @Success      200       {object}  productResponse
// @Failure      400       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/products/{id}/stock [patch]
func (h *ProductHandler) UpdateStock(c echo.Context) error {
	quantity, err := strconv.Atoi(c.QueryParam("quantity"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "quantity must be an integer"})
	}

	product, err := h.service.UpdateStock(requestContext(c), c.Param("id"), quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProductResponse(product))
}
