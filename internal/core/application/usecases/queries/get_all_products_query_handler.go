package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetAllProductsQueryHandler retrieves all catalog records from the database.
type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllProductsQueryHandler creates a handler for the catalog query.
// Requires a GORM database connection for query execution.
func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve every catalog record.
// Results are sorted by product id and location for consistent output.
func (h GetAllProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAllProductsQuery,
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
		ORDER BY product_id, location
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProductRows(rows)
}

func scanProductRows(rows *sql.Rows) ([]ProductResponse, error) {
	products := make([]ProductResponse, 0)

	for rows.Next() {
		var (
			productResp ProductResponse
			price       sql.NullFloat64
		)

		err := rows.Scan(
			&productResp.ID,
			&productResp.Location,
			&productResp.Name,
			&price,
			&productResp.Quantity,
		)
		if err != nil {
			return nil, err
		}

		if price.Valid {
			value := price.Float64
			productResp.Price = &value
		}

		products = append(products, productResp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
