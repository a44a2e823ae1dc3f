package parcel

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var TransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "package_transitions_total",
		Help: "Committed package status transitions by target status",
	},
	[]string{"status"},
)

// UnappliedChargesTotal counts successful sender charges whose package could
// not be stored; each one needs a manual refund.
var UnappliedChargesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "package_unapplied_charges_total",
		Help: "Sender payments taken for packages that were never stored",
	},
)
