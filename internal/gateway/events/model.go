package events

import "time"

type packageEventMessage struct {
	PackageID      string    `json:"packageId"`
	TrackingNumber string    `json:"trackingNumber"`
	Status         string    `json:"status"`
	SenderID       string    `json:"senderId"`
	CourierID      *string   `json:"courierId,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}
