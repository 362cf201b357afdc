// Package errs provides standardized error types for the webshop
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct type carrying error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() back to the sentinel
//
// The sentinels are what the HTTP boundary switches on: ErrObjectNotFound
// maps to 404, ErrValueIsRequired/ErrValueIsInvalid/ErrValueIsOutOfRange to
// 400. Stock business errors (out of stock, insufficient stock) are defined
// next to the allocator in the domain services package and map to 409.
package errs
