package queries

import (
	"errors"

	"webshop/internal/pkg/guard"
)

var (
	ErrGetAllProductsQueryIsNotConstructed = errors.New(
		"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
	)
)

// GetAllProductsQuery retrieves the whole catalog, one entry per product
// and location.
type GetAllProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllProductsQuery creates a query to retrieve the full catalog.
// This is a parameterless query.
func NewGetAllProductsQuery() GetAllProductsQuery {
	return GetAllProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllProductsQueryIsNotConstructed if validation fails.
func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

// ProductResponse is one stock record of the catalog: a product's presence
// at one warehouse location. Shared by the product queries.
type ProductResponse struct {
	ID       int
	Location string
	Name     string
	Price    *float64
	Quantity int
}
