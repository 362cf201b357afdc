package http

import (
	"errors"
	"net/http"

	"webshop/internal/core/application/usecases/commands"
	"webshop/internal/core/domain/services"
	"webshop/internal/metrics"
	"webshop/internal/pkg/errs"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFromError maps domain and validation errors onto HTTP status codes.
// Unknown errors map to 500 so internals never leak a misleading 4xx.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrProductOutOfStock),
		errors.Is(err, services.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrBasketIsRequired),
		errors.Is(err, commands.ErrProductIDIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// failureReason maps an error onto the metrics failure label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return metrics.ReasonNotFound
	case errors.Is(err, services.ErrProductOutOfStock):
		return metrics.ReasonOutOfStock
	case errors.Is(err, services.ErrInsufficientStock):
		return metrics.ReasonInsufficientStock
	case statusFromError(err) == http.StatusBadRequest:
		return metrics.ReasonInvalidRequest
	default:
		return metrics.ReasonInternal
	}
}
