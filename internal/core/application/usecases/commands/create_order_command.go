package commands

import (
	"errors"

	"webshop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrBasketIsRequired   = errors.New("order must contain at least one line item")
	ErrProductIDIsInvalid = errors.New("product id must be greater than 0")
)

// BasketItem is one requested position of a new order as submitted by the
// client. Quantity stays a pointer until the handler runs: a missing quantity
// is a distinct client error reported with the offending product id, not a
// zero request.
type BasketItem struct {
	ProductID int
	Quantity  *int
}

// CreateOrderCommand represents a request to place a new order for one or
// more products.
//
// Example:
//
//	qty := 2
//	cmd, err := NewCreateOrderCommand([]BasketItem{{ProductID: 1, Quantity: &qty}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %d placed", placed.ID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	items []BasketItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the basket is not empty and every product id is positive.
// Quantities are validated later by the handler so that missing ones can be
// reported per product.
func NewCreateOrderCommand(items []BasketItem) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderCommand.setItems(items); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Items returns the requested basket positions.
func (c CreateOrderCommand) Items() []BasketItem {
	items := make([]BasketItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setItems(items []BasketItem) error {
	if len(items) == 0 {
		return ErrBasketIsRequired
	}

	for _, item := range items {
		if item.ProductID <= 0 {
			return ErrProductIDIsInvalid
		}
	}

	c.items = make([]BasketItem, len(items))
	copy(c.items, items)
	return nil
}
