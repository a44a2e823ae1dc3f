package payment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_gateway_retries_total",
			Help: "Total number of payment requests that needed more than one attempt",
		},
		[]string{"operator", "outcome"},
	)

	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_gateway_request_duration_seconds",
			Help:    "Duration of payment requests including retries",
			Buckets: []float64{.1, .25, .5, 1, 2, 3, 5, 10},
		},
		[]string{"operator", "outcome"},
	)
)
