package settlement

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SettlementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlements_total",
			Help: "Settled deliveries by payment method",
		},
		[]string{"payment_method"},
	)

	CommissionCollected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "settlement_commission_collected_total",
			Help: "Commission drawn from courier deposits, in currency units",
		},
	)

	RechargesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deposit_recharges_total",
			Help: "Courier deposit recharge attempts by outcome",
		},
		[]string{"operator", "outcome"},
	)
)
