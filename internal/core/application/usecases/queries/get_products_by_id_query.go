package queries

import (
	"errors"

	"webshop/internal/pkg/errs"
	"webshop/internal/pkg/guard"
)

var (
	ErrGetProductsByIDQueryIsNotConstructed = errors.New(
		"GetProductsByIDQuery must be created via NewGetProductsByIDQuery constructor",
	)
)

// GetProductsByIDQuery retrieves all stock records of one logical product,
// one per warehouse location that carries it.
type GetProductsByIDQuery struct { //nolint:recvcheck //using for validation
	productID int

	guard guard.ConstructorGuard
}

// NewGetProductsByIDQuery creates a query for one product's stock records.
// Returns an error if the id is not positive.
func NewGetProductsByIDQuery(productID int) (GetProductsByIDQuery, error) {
	query := GetProductsByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setProductID(productID); err != nil {
		return GetProductsByIDQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProductsByIDQueryIsNotConstructed if validation fails.
func (q GetProductsByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsByIDQueryIsNotConstructed)
}

// ProductID returns the requested product identifier.
func (q GetProductsByIDQuery) ProductID() int {
	return q.productID
}

func (q *GetProductsByIDQuery) setProductID(productID int) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidError("product id")
	}

	q.productID = productID
	return nil
}
