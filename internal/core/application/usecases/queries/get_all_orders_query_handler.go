package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all orders from the database.
//
// Example:
//
//	handler := NewGetAllOrdersQueryHandler(db)
//	query := NewGetAllOrdersQuery()
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get orders: %v", err)
//	    return err
//	}
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the all-orders query.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders with their line items.
// Results are sorted by order ID for consistent output.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.timestamp,
			o.order_cost,
			o.delivery_cost,
			o.delivery_time,
			li.product_id,
			li.quantity
		FROM orders o
		LEFT JOIN order_line_items li ON li.order_id = o.id
		ORDER BY o.id, li.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

// scanOrderRows folds the joined order/line-item rows into one response per
// order. Rows arrive sorted by order id, so a change of id starts a new
// order. The line-item columns are nullable because of the left join.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var (
			current   OrderResponse
			orderCost sql.NullFloat64
			productID sql.NullInt64
			quantity  sql.NullInt64
		)

		err := rows.Scan(
			&current.ID,
			&current.Timestamp,
			&orderCost,
			&current.DeliveryCost,
			&current.DeliveryTime,
			&productID,
			&quantity,
		)
		if err != nil {
			return nil, err
		}

		if orderCost.Valid {
			cost := orderCost.Float64
			current.OrderCost = &cost
		}

		if len(orders) == 0 || orders[len(orders)-1].ID != current.ID {
			current.LineItems = make([]OrderLineItemResponse, 0)
			orders = append(orders, current)
		}

		if productID.Valid {
			last := &orders[len(orders)-1]
			last.LineItems = append(last.LineItems, OrderLineItemResponse{
				ProductID: int(productID.Int64),
				Quantity:  int(quantity.Int64),
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
