package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SubmissionsTotal counts submission outcomes.
	// Labels: outcome (accepted/validation_failed/captcha_failed/rate_limited/timeout/error)
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suiteprompt_submissions_total",
			Help: "Total number of submission attempts by outcome",
		},
		[]string{"outcome"},
	)

	// CatalogRequestsTotal counts catalog reads by collection.
	CatalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suiteprompt_catalog_requests_total",
			Help: "Total number of catalog list requests by collection",
		},
		[]string{"collection"},
	)

	// RequestDuration observes HTTP handler latency per route.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "suiteprompt_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds by method and route",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"method", "route"},
	)
)

// RecordSubmission records one submission attempt outcome.
func RecordSubmission(outcome string) {
	SubmissionsTotal.WithLabelValues(outcome).Inc()
}

// RecordCatalogRequest records one catalog list request.
func RecordCatalogRequest(collection string) {
	CatalogRequestsTotal.WithLabelValues(collection).Inc()
}
