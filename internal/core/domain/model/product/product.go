package product

import (
	"errors"
	"fmt"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through one of the constructor functions.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Product is one location-partitioned stock record. The same logical
// product id may exist once per warehouse, each record with its own price
// and quantity, so identity is the composite key (id, location).
//
// Invariants:
//   - quantity never goes negative; a depleted record stays at zero and is
//     skipped by allocation, never removed
//   - records are seeded externally and mutated only through
//     ReduceQuantity during order creation
type Product struct {
	// id is the logical product identifier shared across locations
	id int

	// location is the warehouse holding this record
	location kernel.Location

	name string

	// price is nil when the seed data carries no price; the allocator
	// rejects such a record the moment its price becomes load-bearing
	price *float64

	quantity int

	isConstructed bool
}

// NewProduct creates a stock record with full validation. Use it for
// records originating inside the application (tests, seeding).
//
// The id must be positive, the location must name a known facility, the
// price (when present) must be non-negative and the quantity must not be
// negative.
func NewProduct(id int, location kernel.Location, name string, price *float64, quantity int) (*Product, error) {
	p := &Product{
		name:          name,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setLocation(location),
		p.setPrice(price),
		p.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a stock record from persistence. Unlike
// NewProduct it tolerates a missing location and a missing price: catalog
// seed data can be incomplete, and the allocator is the component that
// rejects such records with an error naming them. Negative quantities are
// still refused because no valid history can produce one.
func RestoreProduct(id int, location kernel.Location, name string, price *float64, quantity int) (*Product, error) {
	p := &Product{
		location:      location,
		name:          name,
		price:         price,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was built through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two records by their composite key.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id == other.id && p.location == other.location
}

// ID returns the logical product identifier.
func (p *Product) ID() int {
	return p.id
}

// Location returns the warehouse holding this record.
// The zero value indicates a record restored with no location.
func (p *Product) Location() kernel.Location {
	return p.location
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price, or nil when the record carries none.
func (p *Product) Price() *float64 {
	return p.price
}

// Quantity returns the units currently in stock at this location.
func (p *Product) Quantity() int {
	return p.quantity
}

// HasStock reports whether the record has any units left.
func (p *Product) HasStock() bool {
	return p.quantity > 0
}

// ReduceQuantity removes n units from the record. It refuses to remove
// more units than are in stock, keeping the never-negative invariant.
func (p *Product) ReduceQuantity(n int) error {
	if n < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity to reduce", fmt.Errorf("%d is negative", n))
	}
	if n > p.quantity {
		return errs.NewValueIsOutOfRangeError("quantity to reduce", n, 0, p.quantity)
	}

	p.quantity -= n
	return nil
}

func (p *Product) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"product id", fmt.Errorf("%d is not greater than 0", id))
	}
	p.id = id
	return nil
}

func (p *Product) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.location = location
	return nil
}

func (p *Product) setPrice(price *float64) error {
	if price != nil && *price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%f is negative", *price))
	}
	p.price = price
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is negative", quantity))
	}
	p.quantity = quantity
	return nil
}
