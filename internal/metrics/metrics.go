// Package metrics exposes Prometheus instrumentation for the order flow.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors for order placement. All collectors are
// registered on construction; registering twice on the same registry reuses
// the existing collector instead of failing.
type Metrics struct {
	// OrdersCreated counts successfully placed orders.
	OrdersCreated prometheus.Counter

	// OrderFailures counts rejected order placements by reason.
	OrderFailures *prometheus.CounterVec

	// OrderCost observes the priced total of placed orders.
	OrderCost prometheus.Histogram
}

// Failure reasons for the OrderFailures counter.
const (
	ReasonNotFound          = "not_found"
	ReasonOutOfStock        = "out_of_stock"
	ReasonInsufficientStock = "insufficient_stock"
	ReasonInvalidRequest    = "invalid_request"
	ReasonInternal          = "internal"
)

// New creates and registers the order metrics on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "webshop_orders_created_total",
		Help: "Number of successfully placed orders.",
	})

	orderFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "webshop_order_failures_total",
		Help: "Number of rejected order placements by reason.",
	}, []string{"reason"})

	orderCost := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "webshop_order_cost",
		Help:    "Priced total of placed orders.",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000},
	})

	return &Metrics{
		OrdersCreated: registerOrExisting(reg, ordersCreated).(prometheus.Counter),
		OrderFailures: registerOrExisting(reg, orderFailures).(*prometheus.CounterVec),
		OrderCost:     registerOrExisting(reg, orderCost).(prometheus.Histogram),
	}
}

// registerOrExisting registers the collector and falls back to the already
// registered instance when another component got there first.
func registerOrExisting(reg prometheus.Registerer, c prometheus.Collector) prometheus.Collector {
	if err := reg.Register(c); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			return alreadyRegistered.ExistingCollector
		}
		panic(err)
	}
	return c
}
