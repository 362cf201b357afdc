package services

import (
	"fmt"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/product"
	"webshop/internal/pkg/errs"
)

// AllocationResult is the outcome of validating and pricing one line item
// across the location records of its product.
type AllocationResult struct {
	// Cost is the line item's cost: unit price times requested quantity.
	Cost float64

	// LocationCount is the number of distinct warehouses the scan touched
	// before the request was covered.
	LocationCount int
}

// StockAllocator satisfies a requested quantity from the location records
// of a single product. Validation and pricing are decoupled from the
// decrement: ValidateAndPrice is pure and may run any number of times,
// Allocate commits the mutation afterwards.
//
// Both methods walk the records in the order handed to them. That order is
// load-bearing for reproducible allocation, so the catalog must return
// records in a stable order and callers must not reorder them.
//
// Example usage:
//
//	allocator := services.NewStockAllocator()
//	result, err := allocator.ValidateAndPrice(records, 5, records[0].Price())
//	if err != nil {
//	    // OutOfStockError, InsufficientStockError or a validation error
//	    return err
//	}
//	if err := allocator.Allocate(5, records); err != nil {
//	    return err
//	}
type StockAllocator struct{}

// NewStockAllocator creates a new StockAllocator instance.
func NewStockAllocator() StockAllocator {
	return StockAllocator{}
}

// ValidateAndPrice checks that the records can cover requestedQuantity and
// computes the line item's cost. It performs no mutation.
//
// The scan skips depleted records, accumulates the available quantity and
// the set of distinct locations, and stops as soon as the accumulated
// quantity covers the request. The single unitPrice is applied uniformly
// to the whole requested quantity regardless of which records would
// actually supply it.
//
// Failure conditions, each detected before any stock is committed:
//   - a visited record without a location (validation error naming it)
//   - the satisfying record, or the uniform unit price, missing a price
//   - all records depleted (OutOfStockError)
//   - accumulated quantity short of the request (InsufficientStockError)
func (a StockAllocator) ValidateAndPrice(
	records []*product.Product,
	requestedQuantity int,
	unitPrice *float64,
) (AllocationResult, error) {
	if requestedQuantity < 0 {
		return AllocationResult{}, errs.NewValueIsInvalidErrorWithCause(
			"requested quantity", fmt.Errorf("%d is negative", requestedQuantity))
	}

	locations := make(map[kernel.Location]struct{})
	availableQuantity := 0

	for _, record := range records {
		if !record.HasStock() {
			continue
		}
		availableQuantity += record.Quantity()

		if record.Location().IsEmpty() {
			return AllocationResult{}, errs.NewValueIsRequiredError(
				fmt.Sprintf("location of product with id %d", record.ID()))
		}
		locations[record.Location()] = struct{}{}

		if availableQuantity >= requestedQuantity {
			if record.Price() == nil {
				return AllocationResult{}, errs.NewValueIsRequiredError(
					fmt.Sprintf("price of product with id %d", record.ID()))
			}
			if unitPrice == nil {
				return AllocationResult{}, errs.NewValueIsRequiredError(
					fmt.Sprintf("unit price of product with id %d", record.ID()))
			}

			return AllocationResult{
				Cost:          *unitPrice * float64(requestedQuantity),
				LocationCount: len(locations),
			}, nil
		}
	}

	productID := 0
	if len(records) > 0 {
		productID = records[0].ID()
	}

	if availableQuantity == 0 {
		return AllocationResult{}, NewOutOfStockError(productID)
	}
	return AllocationResult{}, NewInsufficientStockError(productID, availableQuantity, requestedQuantity)
}

// Allocate commits the decrement for a previously validated request. It
// walks the records in the same order as ValidateAndPrice, draining each
// record until the remaining quantity reaches zero. The total removed
// equals requestedQuantity exactly and no record is driven negative; a
// requested quantity of zero performs no mutation.
func (a StockAllocator) Allocate(requestedQuantity int, records []*product.Product) error {
	remaining := requestedQuantity

	for _, record := range records {
		if remaining <= 0 {
			break
		}

		available := record.Quantity()
		if available >= remaining {
			if err := record.ReduceQuantity(remaining); err != nil {
				return err
			}
			remaining = 0
		} else {
			if err := record.ReduceQuantity(available); err != nil {
				return err
			}
			remaining -= available
		}
	}

	if remaining > 0 {
		// Unreachable when ValidateAndPrice ran on the same records.
		return NewInsufficientStockError(productIDOf(records), requestedQuantity-remaining, requestedQuantity)
	}
	return nil
}

func productIDOf(records []*product.Product) int {
	if len(records) == 0 {
		return 0
	}
	return records[0].ID()
}
