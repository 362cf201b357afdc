package services

import (
	"webshop/internal/core/domain/model/order"
)

// Pricing tiers, evaluated lowest first. Boundary values belong to the
// lower, cheaper tier.
const (
	freeDeliveryThreshold = 500
	discountThreshold     = 1000
	discountMultiplier    = 0.9
)

// PricingEngine applies the tiered discount, delivery-cost and
// delivery-time rules to an aggregated basket.
//
// Tiers:
//   - total <= 500: no discount, delivery cost stays at its default
//   - 500 < total <= 1000: free delivery, no discount
//   - total > 1000: free delivery and a 10% discount
//
// Delivery time grows with the number of distinct shipping origins: one
// warehouse keeps the default, otherwise each origin adds two days.
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// ApplyDiscountAndDeliveryCost prices the order from the aggregated basket
// total, applying the tier the total falls into.
func (p PricingEngine) ApplyDiscountAndDeliveryCost(o *order.Order, totalCost float64) {
	if totalCost <= freeDeliveryThreshold {
		o.SetOrderCost(totalCost)
		return
	}
	if totalCost > discountThreshold {
		o.SetOrderCost(totalCost * discountMultiplier)
		o.MakeDeliveryFree()
		return
	}
	o.SetOrderCost(totalCost)
	o.MakeDeliveryFree()
}

// ApplyDeliveryTime sets the order's delivery time from the distinct
// location count aggregated across line items. Exactly one location keeps
// the default; otherwise each location contributes two days.
func (p PricingEngine) ApplyDeliveryTime(o *order.Order, locationCount int) {
	if locationCount == 1 {
		return
	}
	o.SetDeliveryTime(locationCount * order.DefaultDeliveryTime)
}
