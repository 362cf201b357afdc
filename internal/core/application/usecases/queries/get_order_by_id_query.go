package queries

import (
	"errors"

	"webshop/internal/pkg/errs"
	"webshop/internal/pkg/guard"
)

var (
	ErrGetOrderByIDQueryIsNotConstructed = errors.New(
		"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
	)
)

// GetOrderByIDQuery retrieves a single order by its identifier.
//
// Example:
//
//	query, err := NewGetOrderByIDQuery(42)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderByIDQueryHandler(db)
//
//	order, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such order
//	}
type GetOrderByIDQuery struct { //nolint:recvcheck //using for validation
	orderID int

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for a single order.
// Returns an error if the id is not positive.
func NewGetOrderByIDQuery(orderID int) (GetOrderByIDQuery, error) {
	query := GetOrderByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByIDQueryIsNotConstructed if validation fails.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderByIDQuery) OrderID() int {
	return q.orderID
}

func (q *GetOrderByIDQuery) setOrderID(orderID int) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}

	q.orderID = orderID
	return nil
}
