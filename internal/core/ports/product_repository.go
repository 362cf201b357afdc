package ports

import (
	"context"

	"webshop/internal/core/domain/model/product"
)

// ProductRepository is the catalog capability the fulfillment engine calls.
// It exposes the location-partitioned stock records of a product and the
// single mutation the engine performs on them.
type ProductRepository interface {
	// GetByProductID returns all stock records sharing the given logical
	// product id. The order is stable across repeated calls within one
	// transaction (records sorted by location); allocation reproducibility
	// depends on that stability. Returns an empty slice, never nil, for an
	// unknown id.
	GetByProductID(ctx context.Context, productID int) ([]*product.Product, error)

	// GetAll returns every stock record in the catalog, sorted by
	// product id and location.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// Update persists a record's changed quantity.
	Update(ctx context.Context, aggregate *product.Product) error
}
