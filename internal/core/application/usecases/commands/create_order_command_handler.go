package commands

import (
	"context"
	"fmt"
	"time"

	"webshop/internal/core/domain/model/order"
	"webshop/internal/core/domain/services"
	"webshop/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Checks availability across warehouse locations, prices the basket, applies
// volume discounts and delivery terms, decrements stock and persists the
// order in one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	qty := 3
//	cmd, _ := NewCreateOrderCommand([]BasketItem{{ProductID: 1, Quantity: &qty}})
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now persisted with its cost and delivery terms computed
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.StockAllocator
	pricing    services.PricingEngine
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewStockAllocator(),
		pricing:    services.NewPricingEngine(),
	}
}

// Handle processes the order placement command.
// Every line item is validated and priced against the catalog before any
// stock is decremented; a failure on any item rolls back the whole order.
// Returns the persisted order with its assigned id.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	var (
		totalCost    float64
		maxLocations int
	)
	lineItems := make([]order.LineItem, 0, len(cmd.Items()))

	for _, item := range cmd.Items() {
		if item.Quantity == nil {
			return nil, errs.NewValueIsRequiredError(
				fmt.Sprintf("quantity for product with id %d", item.ProductID))
		}

		lineItem, err := order.NewLineItem(item.ProductID, *item.Quantity)
		if err != nil {
			return nil, err
		}

		records, err := productRepo.GetByProductID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		// A product id with no catalog records is bad input, not a missing
		// resource: the order endpoint only looks orders up by id.
		if len(records) == 0 {
			return nil, errs.NewValueIsInvalidError(
				fmt.Sprintf("product with id %d", item.ProductID))
		}

		result, err := h.allocator.ValidateAndPrice(records, lineItem.Quantity(), records[0].Price())
		if err != nil {
			return nil, err
		}

		totalCost += result.Cost
		if result.LocationCount > maxLocations {
			maxLocations = result.LocationCount
		}

		quantitiesBefore := make([]int, len(records))
		for i, record := range records {
			quantitiesBefore[i] = record.Quantity()
		}

		if err = h.allocator.Allocate(lineItem.Quantity(), records); err != nil {
			return nil, err
		}

		for i, record := range records {
			if record.Quantity() == quantitiesBefore[i] {
				continue
			}
			if err = productRepo.Update(ctx, record); err != nil {
				return nil, err
			}
		}

		lineItems = append(lineItems, lineItem)
	}

	newOrder, err := order.NewOrder(lineItems)
	if err != nil {
		return nil, err
	}

	h.pricing.ApplyDiscountAndDeliveryCost(newOrder, totalCost)
	h.pricing.ApplyDeliveryTime(newOrder, maxLocations)
	newOrder.StampTimestamp(time.Now())

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
