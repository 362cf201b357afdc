package ports

import (
	"context"

	"webshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are written exactly once; there is no update operation.
type OrderRepository interface {
	// Add persists a new order and assigns its generated surrogate
	// identity back to the aggregate. Must run inside the same
	// transaction as the stock decrements of the order's line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// GetByID retrieves an order by its surrogate identity.
	GetByID(ctx context.Context, id int) (*order.Order, error)

	// GetAll retrieves every persisted order, oldest first.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
