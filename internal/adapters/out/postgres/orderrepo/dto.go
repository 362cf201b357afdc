// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"webshop/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The surrogate id is generated by the database on insert; line items live in
// their own table and are written together with the order row.
type OrderDTO struct {
	ID           int `gorm:"primaryKey;autoIncrement"`
	Timestamp    time.Time
	OrderCost    *float64
	DeliveryCost int
	DeliveryTime int
	LineItems    []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one position of an order. Rows keep their insert
// order via the surrogate id, which preserves the basket order on reads.
type LineItemDTO struct {
	ID        int `gorm:"primaryKey;autoIncrement"`
	OrderID   int `gorm:"index"`
	ProductID int
	Quantity  int
}

// TableName specifies the database table name for order line items.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// A transient order maps to a zero id so the database assigns one on insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	lineItems := aggregate.LineItems()
	itemDTOs := make([]LineItemDTO, 0, len(lineItems))
	for _, li := range lineItems {
		itemDTOs = append(itemDTOs, LineItemDTO{
			OrderID:   aggregate.ID(),
			ProductID: li.ProductID(),
			Quantity:  li.Quantity(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID(),
		Timestamp:    aggregate.Timestamp(),
		OrderCost:    aggregate.OrderCost(),
		DeliveryCost: aggregate.DeliveryCost(),
		DeliveryTime: aggregate.DeliveryTime(),
		LineItems:    itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	lineItems := make([]order.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		li, err := order.NewLineItem(itemDTO.ProductID, itemDTO.Quantity)
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, li)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.Timestamp,
		lineItems,
		dto.OrderCost,
		dto.DeliveryCost,
		dto.DeliveryTime,
	)
}
