package order

import (
	"errors"
	"fmt"

	"webshop/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one (productId, requestedQuantity) pair within an order.
//
// A quantity of zero is a valid no-op request. The distinction between a
// missing quantity and a zero quantity is drawn at the command boundary,
// where the quantity is still optional; by the time a LineItem exists the
// quantity is known.
type LineItem struct {
	productID int
	quantity  int

	isConstructed bool
}

// NewLineItem creates a line item. The product id must be positive and the
// quantity must not be negative.
func NewLineItem(productID int, quantity int) (LineItem, error) {
	li := LineItem{isConstructed: true}

	if err := errors.Join(
		li.setProductID(productID),
		li.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return li, nil
}

// Validate ensures the line item was created through NewLineItem.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ProductID returns the logical product identifier being ordered.
func (li LineItem) ProductID() int {
	return li.productID
}

// Quantity returns the requested quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

func (li *LineItem) setProductID(productID int) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"product id", fmt.Errorf("%d is not greater than 0", productID))
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is negative", quantity))
	}
	li.quantity = quantity
	return nil
}
