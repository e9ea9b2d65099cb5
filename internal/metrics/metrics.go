package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "riskboard"
)

var (
	backendDurationBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

	// Backend call metrics
	BackendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Count of HTTP calls made to the risk platform backend.",
	}, []string{"method", "path", "status"})

	BackendRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Time taken by calls to the risk platform backend.",
		Buckets:   backendDurationBuckets,
	}, []string{"method", "path"})

	// Refresh pass metrics
	RefreshPassesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refresh_passes_total",
		Help:      "Count of full dashboard refresh passes.",
	}, []string{"status"})

	LoaderFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loader_failures_total",
		Help:      "Count of individual region loader failures.",
	}, []string{"region"})

	// Mutation metrics
	MutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Count of user-triggered write workflows.",
	}, []string{"workflow", "status"})
)
