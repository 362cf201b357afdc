package kernel

import (
	"fmt"
	"strings"

	"webshop/internal/pkg/errs"
)

// Location identifies the warehouse facility a stock record belongs to.
// The set of facilities is closed: the same logical product id may exist
// once per location, so Location is one half of the product composite key.
//
// The zero value ("") is invalid and represents a missing location. Being a
// plain string-backed value, Location compares with == and is usable as a
// map key.
//
// Example:
//
//	loc, err := kernel.NewLocationFromString("munich")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(loc) // Output: MUNICH
type Location string

const (
	// Munich is the Munich warehouse.
	Munich Location = "MUNICH"
	// Cologne is the Cologne warehouse.
	Cologne Location = "COLOGNE"
	// Frankfurt is the Frankfurt warehouse.
	Frankfurt Location = "FRANKFURT"
)

// AllLocations returns every known warehouse facility.
// The order is stable: alphabetical by name.
func AllLocations() []Location {
	return []Location{Cologne, Frankfurt, Munich}
}

// NewLocationFromString parses a facility name into a Location.
// Matching is case-insensitive. Returns an error for an empty or unknown
// name.
func NewLocationFromString(s string) (Location, error) {
	if s == "" {
		return "", errs.NewValueIsRequiredError("location")
	}

	candidate := Location(strings.ToUpper(s))
	for _, known := range AllLocations() {
		if candidate == known {
			return known, nil
		}
	}

	return "", errs.NewValueIsInvalidErrorWithCause(
		"location", fmt.Errorf("%q is not a known facility", s))
}

// IsEmpty reports whether the location is the missing zero value.
func (l Location) IsEmpty() bool {
	return l == ""
}

// Validate checks that the location names a known facility.
// Returns a value-required error for the zero value and a value-invalid
// error for anything outside the closed facility set.
func (l Location) Validate() error {
	if l.IsEmpty() {
		return errs.NewValueIsRequiredError("location")
	}

	for _, known := range AllLocations() {
		if l == known {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"location", fmt.Errorf("%q is not a known facility", string(l)))
}

// String returns the facility name. Implements fmt.Stringer.
func (l Location) String() string {
	return string(l)
}
