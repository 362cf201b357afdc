package services

import (
	"errors"
	"fmt"
)

// Sentinel errors for stock business-rule violations. The HTTP boundary
// matches on these with errors.Is; the typed errors below carry the
// diagnostic payload.
var (
	// ErrProductOutOfStock indicates every record of a product holds zero
	// quantity.
	ErrProductOutOfStock = errors.New("product out of stock")

	// ErrInsufficientStock indicates the quantity available across all
	// records of a product is less than requested.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// OutOfStockError reports a product with no stock left in any location.
type OutOfStockError struct {
	ProductID int
}

// NewOutOfStockError creates an OutOfStockError for the given product.
func NewOutOfStockError(productID int) *OutOfStockError {
	return &OutOfStockError{ProductID: productID}
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("product with id %d out of stock in all locations", e.ProductID)
}

func (e *OutOfStockError) Unwrap() error {
	return ErrProductOutOfStock
}

// InsufficientStockError reports a shortfall between what a product has in
// stock across all locations and what the basket requested.
type InsufficientStockError struct {
	ProductID int
	Available int
	Requested int
}

// NewInsufficientStockError creates an InsufficientStockError carrying the
// shortfall diagnostics.
func NewInsufficientStockError(productID, available, requested int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID: productID,
		Available: available,
		Requested: requested,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product with id %d: available %d, requested %d",
		e.ProductID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
