// Package metrics provides Prometheus metrics for the idea board API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal tracks handled requests by route pattern and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ideaboard",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of handled HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	// HTTPRequestDuration tracks request latency by route pattern
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ideaboard",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "route"},
	)

	// AICallsTotal tracks calls to the text-generation service by operation and outcome
	AICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ideaboard",
			Subsystem: "ai",
			Name:      "calls_total",
			Help:      "Total number of text-generation calls",
		},
		[]string{"operation", "status"},
	)

	// AICallDuration tracks text-generation latency by operation
	AICallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ideaboard",
			Subsystem: "ai",
			Name:      "call_duration_seconds",
			Help:      "Duration of text-generation calls in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"operation"},
	)
)
