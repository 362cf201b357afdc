package queries

import (
	"context"

	"webshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProductsByIDQueryHandler retrieves one product's stock records from
// the database.
type GetProductsByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsByIDQueryHandler creates a handler for the product-by-id query.
// Requires a GORM database connection for query execution.
func NewGetProductsByIDQueryHandler(db *gorm.DB) GetProductsByIDQueryHandler {
	return GetProductsByIDQueryHandler{db: db}
}

// Handle executes the query for one product's records, sorted by location.
// Returns an ObjectNotFoundError when the catalog has no record of the id.
func (h GetProductsByIDQueryHandler) Handle(
	ctx context.Context,
	query GetProductsByIDQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			location,
			name,
			price,
			quantity
		FROM products
		WHERE product_id = ?
		ORDER BY location
	`, query.ProductID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products, err := scanProductRows(rows)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, errs.NewObjectNotFoundError("product", query.ProductID())
	}

	return products, nil
}
