package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxNameLength        = 255
	maxDescriptionLength = 1000
)

var ErrProductNotFound = errors.New("product not found")

// Product is the catalog aggregate. A product is never physically removed:
// deletion sets Active to false and the record stays retrievable by id.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ValidationError enumerates every violated field of a single input.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// ValidateProduct checks the business bounds on product input. It is a pure
// function so the rules can be tested without transport or storage in play.
func ValidateProduct(name, description string, price float64, stockQuantity int) error {
	var violations []string

	if strings.TrimSpace(name) == "" {
		violations = append(violations, "name is required")
	} else if utf8.RuneCountInString(name) > maxNameLength {
		violations = append(violations, fmt.Sprintf("name must be at most %d characters", maxNameLength))
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		violations = append(violations, fmt.Sprintf("description must be at most %d characters", maxDescriptionLength))
	}
	if price < 0 {
		violations = append(violations, "price must be greater than or equal to 0")
	}
	if stockQuantity < 0 {
		violations = append(violations, "stock quantity must be greater than or equal to 0")
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// ValidateStockQuantity checks the bound for the stock-only update path.
func ValidateStockQuantity(quantity int) error {
	if quantity < 0 {
		return &ValidationError{Violations: []string{"stock quantity must be greater than or equal to 0"}}
	}
	return nil
}
