package order

import (
	"errors"
	"fmt"
	"time"

	"webshop/internal/pkg/errs"
)

const (
	// DefaultDeliveryCost is the delivery charge, in currency units,
	// applied unless a pricing tier grants free delivery.
	DefaultDeliveryCost = 30

	// DefaultDeliveryTime is the delivery time, in days, for an order
	// sourced from a single warehouse.
	DefaultDeliveryTime = 2
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through a constructor. This ensures all orders are properly
	// validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an
	// order that already carries a persistent identity.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")
)

// Order is the aggregate produced by the fulfillment flow. It is built
// transiently from a validated basket, priced, stamped with a UTC creation
// timestamp and then persisted exactly once; the engine never updates a
// persisted order.
//
// Invariants:
//   - an order always carries at least one line item
//   - the surrogate id is zero until the store assigns one
//   - order cost is nil until the pricing engine has run
//   - delivery cost and delivery time start at their defaults and only the
//     pricing engine changes them
type Order struct {
	// id is the surrogate identity assigned on persistence; zero while
	// the order is transient
	id int

	// timestamp is the creation instant, stamped in UTC by the engine
	timestamp time.Time

	lineItems []LineItem

	// orderCost is nil until pricing has been applied
	orderCost *float64

	deliveryCost int
	deliveryTime int

	isConstructed bool
}

// NewOrder creates a transient order from a validated basket.
// The basket must contain at least one line item; delivery cost and
// delivery time start at their defaults.
func NewOrder(lineItems []LineItem) (*Order, error) {
	o := &Order{
		deliveryCost:  DefaultDeliveryCost,
		deliveryTime:  DefaultDeliveryTime,
		isConstructed: true,
	}

	if err := o.setLineItems(lineItems); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order from storage.
func RestoreOrder(
	id int,
	timestamp time.Time,
	lineItems []LineItem,
	orderCost *float64,
	deliveryCost int,
	deliveryTime int,
) (*Order, error) {
	o := &Order{
		timestamp:     timestamp,
		orderCost:     orderCost,
		deliveryCost:  deliveryCost,
		deliveryTime:  deliveryTime,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setRestoredID(id),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the surrogate identity, or zero for a transient order.
func (o *Order) ID() int {
	return o.id
}

// Timestamp returns the UTC creation instant.
func (o *Order) Timestamp() time.Time {
	return o.timestamp
}

// LineItems returns a copy of the order's line items, in basket order.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// OrderCost returns the priced total, or nil when pricing has not run.
func (o *Order) OrderCost() *float64 {
	return o.orderCost
}

// DeliveryCost returns the delivery charge in currency units.
func (o *Order) DeliveryCost() int {
	return o.deliveryCost
}

// DeliveryTime returns the delivery time in days.
func (o *Order) DeliveryTime() int {
	return o.deliveryTime
}

// SetOrderCost records the total cost computed by the pricing engine.
func (o *Order) SetOrderCost(cost float64) {
	o.orderCost = &cost
}

// MakeDeliveryFree zeroes the delivery charge.
func (o *Order) MakeDeliveryFree() {
	o.deliveryCost = 0
}

// SetDeliveryTime overrides the default delivery time.
func (o *Order) SetDeliveryTime(days int) {
	o.deliveryTime = days
}

// StampTimestamp records the creation instant. The caller supplies the
// current time in UTC; clients never do.
func (o *Order) StampTimestamp(t time.Time) {
	o.timestamp = t.UTC()
}

// AssignID hands the order its persistent identity. Called exactly once by
// the order store after the insert; reassignment is refused.
func (o *Order) AssignID(id int) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order id", fmt.Errorf("%d is not greater than 0", id))
	}

	o.id = id
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("order line items")
	}

	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}

	o.lineItems = make([]LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}

func (o *Order) setRestoredID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}
