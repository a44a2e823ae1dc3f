package packages_gauge

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

var PackagesByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "marketplace_packages",
		Help: "Number of packages in the registry by status",
	},
	[]string{"status"},
)

type Service interface {
	PackagesByStatus(ctx context.Context) (map[entities.PackageStatus]int64, error)
}

type PackagesGauge struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	gauge    *prometheus.GaugeVec
}

func NewPackagesGauge(log logger.Logger, service Service, interval time.Duration) *PackagesGauge {
	return &PackagesGauge{
		log:      log,
		service:  service,
		interval: interval,
		gauge:    PackagesByStatus,
	}
}

func (p *PackagesGauge) TTL() time.Duration {
	return p.interval
}

// Do refreshes the gauge; statuses without packages are reported as zero.
func (p *PackagesGauge) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	counts, err := p.service.PackagesByStatus(ctxWithTimeout)
	if err != nil {
		return err
	}

	for _, status := range entities.AllPackageStatuses() {
		p.gauge.WithLabelValues(status.String()).Set(float64(counts[status]))
	}

	p.log.With(
		logger.NewField("pending", counts[entities.PackagePending]),
		logger.NewField("in_transit", counts[entities.PackageInTransit]),
	).Info("packages gauge refreshed")

	return nil
}

func (p *PackagesGauge) Info() string {
	return "packages gauge"
}
