// Package queries contains read-only operations against the database.
// Implements the Query side of the CQRS architecture: handlers read
// projections directly with SQL and bypass the domain model.
package queries

import (
	"errors"
	"time"

	"webshop/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every placed order with its line items.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
//	fmt.Printf("Found %d orders\n", len(orders))
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
// This is a parameterless query.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderLineItemResponse is one position of an order as stored.
type OrderLineItemResponse struct {
	ProductID int
	Quantity  int
}

// OrderResponse represents a placed order with its computed cost and
// delivery terms. Shared by the order queries.
type OrderResponse struct {
	ID           int
	Timestamp    time.Time
	LineItems    []OrderLineItemResponse
	OrderCost    *float64
	DeliveryCost int
	DeliveryTime int
}
