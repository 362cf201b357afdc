// Package product contains the stock-record aggregate. A product is
// partitioned by warehouse location: each (id, location) pair is an
// independent record with its own price and quantity, and the order
// fulfillment flow is the only writer of the quantity field.
package product
