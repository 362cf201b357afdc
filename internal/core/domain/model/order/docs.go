// Package order provides domain entities for order fulfillment. It
// implements the Order aggregate root together with the LineItem value
// object.
//
// Key business rules:
//   - an order always carries at least one line item; an empty basket is
//     rejected before anything touches storage
//   - the creation timestamp is stamped by the engine in UTC, never
//     supplied by a client
//   - delivery cost and delivery time default to fixed constants and are
//     adjusted only by the pricing engine
//   - the surrogate identity is assigned by the order store on persistence
//     and never reassigned
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business rules
// are enforced.
package order
