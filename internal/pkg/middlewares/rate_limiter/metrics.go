package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RateLimitExceededTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Name:      "rate_limit_rejected_total",
			Help:      "Requests answered with 429, by limiter scope",
		},
		[]string{"method", "route", "scope"},
	)

	TrackedClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "marketplace",
			Name:      "rate_limit_tracked_clients",
			Help:      "Remote addresses currently holding a per-client bucket",
		},
	)
)
