package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Database query latency in seconds.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"operation", "table"},
	)

	// Donations recorded, labelled by outcome.
	DonationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "donation_count",
			Help: "Total number of donation records created",
		},
		[]string{"status"}, // status: created, processed
	)

	// Funding request lifecycle transitions.
	FundingRequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funding_request_count",
			Help: "Total number of funding request transitions",
		},
		[]string{"action"}, // action: submitted, approved, rejected
	)
)

// RecordHTTPRequestDuration records HTTP request latency.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordDBQueryDuration records database query latency.
func RecordDBQueryDuration(operation, table string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

// IncrementDonation increments the donation counter.
func IncrementDonation(status string) {
	DonationCount.WithLabelValues(status).Inc()
}

// IncrementFundingRequest increments the funding request counter.
func IncrementFundingRequest(action string) {
	FundingRequestCount.WithLabelValues(action).Inc()
}
