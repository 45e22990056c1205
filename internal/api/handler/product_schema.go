package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// productRequest is the write payload for create and update. Field bounds
// mirror the domain rules so most bad input is rejected at bind time with a
// per-field message; the domain validation stays authoritative.
type productRequest struct {
	Name          string  `json:"name"          validate:"required,max=255"`
	Description   string  `json:"description"   validate:"max=1000"`
	Price         float64 `json:"price"         validate:"gte=0"`
	StockQuantity int     `json:"stockQuantity" validate:"gte=0"`
	Active        *bool   `json:"active"`
}

// productResponse is the wire view of a product. Keys are camelCase for
// compatibility with the original API clients.
type productResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	Active        bool    `json:"active"`
}
