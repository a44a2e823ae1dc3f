package entities

import "time"

// PackageEvent is published on every registry write and consumed by the worker.
type PackageEvent struct {
	PackageID      string
	TrackingNumber string
	Status         PackageStatus
	SenderID       string
	CourierID      *string
	OccurredAt     time.Time
}

type ChangeType string

const (
	ChangePackage      ChangeType = "package.changed"
	ChangeNotification ChangeType = "notification.created"
	ChangeBalance      ChangeType = "balance.changed"
)

// ChangeSignal means "something you can see changed, re-fetch". It carries no
// authoritative state. An empty UserIDs reaches every subscriber.
type ChangeSignal struct {
	Type      ChangeType
	UserIDs   []string
	PackageID string
	Status    PackageStatus
	Timestamp time.Time
}

type Overview struct {
	TotalUsers       int64
	TotalCouriers    int64
	ActiveDeliveries int64
	Revenue          int64
	PackagesByStatus map[PackageStatus]int64
}
