package entities

import "time"

type Notification struct {
	ID               string
	UserID           string
	Title            string
	Message          string
	IsRead           bool
	Timestamp        time.Time
	RelatedPackageID *string
}
