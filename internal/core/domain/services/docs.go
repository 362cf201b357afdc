// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the webshop system. It
// implements business workflows that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - StockAllocator: validates availability across the location-partitioned
//     stock records of a product and commits the greedy quantity decrement
//   - PricingEngine: applies the tiered discount, delivery-cost and
//     delivery-time rules to an aggregated basket
//
// Domain services coordinate between aggregates, implementing business
// logic that spans multiple bounded contexts following Domain-Driven
// Design principles.
package services
