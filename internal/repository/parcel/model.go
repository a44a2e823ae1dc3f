package parcel

import "time"

type PackageDB struct {
	ID             string
	TrackingNumber string
	SenderID       string
	CourierID      *string

	SenderName     string
	SenderPhone    string
	RecipientName  string
	RecipientPhone string

	Description  string
	PackageType  string
	PackageCount int
	WeightKg     float64
	LengthCm     *float64
	WidthCm      *float64
	HeightCm     *float64
	PackageValue *int64
	HighValue    bool

	OriginCity         string
	DestinationCity    string
	OriginCommune      string
	DestinationCommune string
	OriginAddress      string
	DestinationAddress string
	ServiceLevel       string
	DistanceKm         *float64

	Price                 int64
	PaymentMethod         string
	EstimatedDeliveryTime string

	Status     string
	SignerName *string
	SignedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type StatusHistoryDB struct {
	PackageID string
	Seq       int
	Status    string
	Note      string
	CreatedAt time.Time
}
