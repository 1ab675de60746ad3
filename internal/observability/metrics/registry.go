// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Backend client metrics track outbound calls to the content backend
var (
	// ClientRequestsTotal counts backend requests by resource, method and status
	ClientRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cms_client_requests_total",
			Help: "Total number of requests sent to the content backend",
		},
		[]string{"resource", "method", "status"},
	)

	// ClientRequestDuration measures backend request duration in seconds
	ClientRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cms_client_request_duration_seconds",
			Help:    "Content backend request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource", "method"},
	)

	// ClientResponseSize measures backend response body size in bytes
	ClientResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cms_client_response_size_bytes",
			Help:    "Content backend response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 6),
		},
		[]string{"resource"},
	)
)

// Console metrics track what the list views and forms do with the backend
var (
	// MutationsTotal counts create/update/delete attempts by outcome
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cms_mutations_total",
			Help: "Total number of create, update and delete operations",
		},
		[]string{"resource", "action", "result"},
	)

	// ListFetchesTotal counts list controller fetches by outcome
	ListFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "list_fetches_total",
			Help: "Total number of list fetches issued by list controllers",
		},
		[]string{"list", "result"},
	)

	// ListStaleResponsesTotal counts responses discarded because a newer one was already applied
	ListStaleResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "list_stale_responses_total",
			Help: "Total number of list responses discarded as out of order",
		},
		[]string{"list"},
	)
)

// RecordClientRequest records a backend request with its metadata
func RecordClientRequest(resource, method, status string, duration time.Duration, responseSize int) {
	ClientRequestsTotal.WithLabelValues(resource, method, status).Inc()
	ClientRequestDuration.WithLabelValues(resource, method).Observe(duration.Seconds())

	if responseSize > 0 {
		ClientResponseSize.WithLabelValues(resource).Observe(float64(responseSize))
	}
}
