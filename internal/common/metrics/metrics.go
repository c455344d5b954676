// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_completed_total",
			Help: "Total number of backend API requests completed",
		},
		[]string{"resource", "method"},
	)

	APIRequestsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_failed_total",
			Help: "Total number of backend API requests failed",
		},
		[]string{"resource", "method", "error_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "api_request_duration_seconds",
			Help: "Duration of backend API requests in seconds",
		},
		[]string{"resource", "method"},
	)

	APIRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "api_requests_in_flight",
			Help: "Number of in-flight backend API requests per resource",
		},
		[]string{"resource"},
	)
)
