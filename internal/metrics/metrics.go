// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts HTTP requests by route pattern.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration observes HTTP latency by route pattern.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "portfolio",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ContactMessagesCreated counts messages accepted and stored.
	ContactMessagesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "contact",
			Name:      "messages_created_total",
			Help:      "Total contact messages stored",
		},
	)

	// ContactValidationFailures counts rejected submissions by offending field.
	ContactValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "contact",
			Name:      "validation_failures_total",
			Help:      "Total contact submissions rejected by validation",
		},
		[]string{"field"},
	)

	// ContactStoreErrors counts persistence failures by operation.
	ContactStoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "contact",
			Name:      "store_errors_total",
			Help:      "Total contact store failures",
		},
		[]string{"operation"},
	)
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
