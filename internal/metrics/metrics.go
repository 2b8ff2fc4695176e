// Package metrics defines the SDK's Prometheus instrumentation.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dishcovery",
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"operation", "status"},
	)

	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dishcovery",
			Name:      "api_request_duration_seconds",
			Help:      "API request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	DetailCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dishcovery",
			Name:      "detail_cache_total",
			Help:      "Detail cache lookups by outcome",
		},
		[]string{"result"}, // "hit" / "miss" / "refresh" / "shared"
	)

	PaginationFetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dishcovery",
			Name:      "pagination_fetches_total",
			Help:      "Nested collection page fetches by kind and outcome",
		},
		[]string{"kind", "status"}, // kind: "menu" / "reviews"
	)

	ClickLogsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dishcovery",
			Name:      "click_logs_total",
			Help:      "Click log attempts by outcome",
		},
		[]string{"status"}, // "sent" / "failed" / "skipped"
	)

	LocationAcquisitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dishcovery",
			Name:      "location_acquisitions_total",
			Help:      "Geolocation acquisition attempts by result",
		},
		[]string{"result"}, // "ok" / "permission_denied" / "unavailable" / "timeout" / "unknown" / "unsupported"
	)
)

var registered bool

// Register registers the SDK metrics with the default registry. Must be
// called once from the embedding application; no init() registration.
func Register() {
	if registered {
		return
	}
	registered = true
	prometheus.MustRegister(
		APIRequestsTotal,
		APIRequestDuration,
		DetailCacheTotal,
		PaginationFetchesTotal,
		ClickLogsTotal,
		LocationAcquisitionsTotal,
	)
}
