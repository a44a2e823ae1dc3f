package events

import (
	"context"
	"encoding/json"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

var PublishFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "package_events_publish_failures_total",
		Help: "Package events that could not be handed to Kafka",
	},
	[]string{"status"},
)

// Publisher forwards registry writes to the package event topic. The write has
// already committed when it is called, so a failure is logged and counted
// rather than returned.
type Publisher struct {
	log      publisherLogger
	producer producer
}

func NewPublisher(log publisherLogger, producer producer) *Publisher {
	return &Publisher{
		log:      log.With(logger.NewField("component", "package_events")),
		producer: producer,
	}
}

func (p *Publisher) PublishPackageEvent(ctx context.Context, event entities.PackageEvent) {
	msg := packageEventMessage{
		PackageID:      event.PackageID,
		TrackingNumber: event.TrackingNumber,
		Status:         event.Status.String(),
		SenderID:       event.SenderID,
		CourierID:      event.CourierID,
		OccurredAt:     event.OccurredAt,
	}

	value, err := json.Marshal(msg)
	if err == nil {
		err = p.producer.Send(context.WithoutCancel(ctx), event.PackageID, value)
	}
	if err != nil {
		PublishFailuresTotal.WithLabelValues(event.Status.String()).Inc()
		p.log.With(
			logger.NewField("package", event.PackageID),
			logger.NewField("status", event.Status.String()),
			logger.NewField("error", err),
		).Error("failed to publish package event")
	}
}
