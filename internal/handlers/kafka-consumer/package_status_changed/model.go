package package_status_changed

import (
	"time"

	"marketplace/internal/entities"
)

type statusChangedEvent struct {
	PackageID      string    `json:"packageId"`
	TrackingNumber string    `json:"trackingNumber"`
	Status         string    `json:"status"`
	SenderID       string    `json:"senderId"`
	CourierID      *string   `json:"courierId,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

func (e statusChangedEvent) toDomain() entities.PackageEvent {
	return entities.PackageEvent{
		PackageID:      e.PackageID,
		TrackingNumber: e.TrackingNumber,
		Status:         entities.PackageStatus(e.Status),
		SenderID:       e.SenderID,
		CourierID:      e.CourierID,
		OccurredAt:     e.OccurredAt,
	}
}
