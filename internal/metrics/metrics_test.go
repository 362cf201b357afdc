package metrics_test

import (
	"testing"

	"webshop/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()

	m := metrics.New(reg)
	m.OrdersCreated.Inc()
	m.OrderFailures.WithLabelValues(metrics.ReasonOutOfStock).Inc()
	m.OrderCost.Observe(300)

	assert.InDelta(t, 1.0, testutil.ToFloat64(m.OrdersCreated), 0.0001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.OrderFailures.WithLabelValues(metrics.ReasonOutOfStock)), 0.0001)
}

func TestNew_DoubleRegistrationReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()

	first := metrics.New(reg)
	require.NotPanics(t, func() {
		second := metrics.New(reg)
		second.OrdersCreated.Inc()
		assert.InDelta(t, 1.0, testutil.ToFloat64(first.OrdersCreated), 0.0001)
	})
}
