package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts page requests issued by list views.
	// Labels: result (success, failure), page_range (page bucket: 1-10, 11-50, etc.)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "list_page_requests_total",
			Help: "Total number of list page requests",
		},
		[]string{"result", "page_range"},
	)

	// DurationSeconds tracks page fetch duration distribution.
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "list_page_duration_seconds",
			Help:    "List page fetch duration distribution",
			Buckets: []float64{0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0},
		},
		[]string{"resource"},
	)

	// TotalCount tracks the last server-reported total per resource.
	TotalCount = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "list_reported_total",
			Help: "Last total item count reported by the backend",
		},
		[]string{"resource"},
	)
)

// RecordRequest records a page request metric.
func RecordRequest(success bool, page int) {
	result := "success"
	if !success {
		result = "failure"
	}
	RequestsTotal.WithLabelValues(result, getPageRangeBucket(page)).Inc()
}

// RecordDuration records fetch duration in seconds.
func RecordDuration(resource string, duration float64) {
	DurationSeconds.WithLabelValues(resource).Observe(duration)
}

// UpdateTotalCount updates the reported total gauge.
func UpdateTotalCount(resource string, count int64) {
	TotalCount.WithLabelValues(resource).Set(float64(count))
}

// getPageRangeBucket returns the page range bucket for a given page number.
func getPageRangeBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
