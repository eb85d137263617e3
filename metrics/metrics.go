// Package metrics holds the Prometheus collectors exposed at /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"method", "path"},
	)

	OrdersPlaced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Orders committed to the store",
		},
	)

	OrderFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_failures_total",
			Help: "Order placements that did not commit, by reason",
		},
		[]string{"reason"},
	)

	OrderAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_amount_won",
			Help:    "Total amount of placed orders in won",
			Buckets: []float64{5000, 10000, 20000, 30000, 50000, 100000, 200000},
		},
	)
)

// Order failure reasons.
const (
	ReasonNotFound        = "not_found"
	ReasonInvalidArgument = "invalid_argument"
	ReasonPersist         = "persist"
	ReasonDuplicateNumber = "duplicate_order_number"
)

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func RecordOrderPlaced(totalAmount int) {
	OrdersPlaced.Inc()
	OrderAmount.Observe(float64(totalAmount))
}

func RecordOrderFailure(reason string) {
	OrderFailures.WithLabelValues(reason).Inc()
}
