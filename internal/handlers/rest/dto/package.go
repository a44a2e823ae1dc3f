package dto

import (
	"time"

	"marketplace/internal/entities"
)

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PackageDraft is the body of both POST /packages and POST /pricing/estimate.
type PackageDraft struct {
	SenderName         string      `json:"senderName"`
	SenderPhone        string      `json:"senderPhone"`
	RecipientName      string      `json:"recipientName"`
	RecipientPhone     string      `json:"recipientPhone"`
	Description        string      `json:"description"`
	PackageType        string      `json:"packageType"`
	PackageCount       int         `json:"packageCount"`
	Weight             float64     `json:"weight"`
	Dimensions         *Dimensions `json:"dimensions,omitempty"`
	PackageValue       *int64      `json:"packageValue,omitempty"`
	HighValue          bool        `json:"highValue"`
	OriginCity         string      `json:"originCity"`
	DestinationCity    string      `json:"destinationCity"`
	OriginCommune      string      `json:"originCommune,omitempty"`
	DestinationCommune string      `json:"destinationCommune,omitempty"`
	OriginAddress      string      `json:"originAddress"`
	DestinationAddress string      `json:"destinationAddress"`
	ServiceLevel       string      `json:"serviceLevel"`
	DistanceKm         *float64    `json:"distanceKm,omitempty"`
	PaymentMethod      string      `json:"paymentMethod"`
}

type CreatePackageRequest struct {
	PackageDraft
	PaymentOperator string `json:"paymentOperator,omitempty"`
}

type StatusEntry struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
}

type DeliverySignature struct {
	SignerName string    `json:"signerName"`
	SignedAt   time.Time `json:"signedAt"`
}

type Package struct {
	ID                    string             `json:"id"`
	TrackingNumber        string             `json:"trackingNumber"`
	SenderID              string             `json:"senderId"`
	CourierID             *string            `json:"courierId,omitempty"`
	SenderName            string             `json:"senderName"`
	SenderPhone           string             `json:"senderPhone"`
	RecipientName         string             `json:"recipientName"`
	RecipientPhone        string             `json:"recipientPhone"`
	Description           string             `json:"description"`
	PackageType           string             `json:"packageType"`
	PackageCount          int                `json:"packageCount"`
	Weight                float64            `json:"weight"`
	Dimensions            *Dimensions        `json:"dimensions,omitempty"`
	PackageValue          *int64             `json:"packageValue,omitempty"`
	HighValue             bool               `json:"highValue"`
	OriginCity            string             `json:"originCity"`
	DestinationCity       string             `json:"destinationCity"`
	OriginCommune         string             `json:"originCommune,omitempty"`
	DestinationCommune    string             `json:"destinationCommune,omitempty"`
	OriginAddress         string             `json:"originAddress"`
	DestinationAddress    string             `json:"destinationAddress"`
	ServiceLevel          string             `json:"serviceLevel"`
	DistanceKm            *float64           `json:"distanceKm,omitempty"`
	Price                 int64              `json:"price"`
	PaymentMethod         string             `json:"paymentMethod"`
	EstimatedDeliveryTime string             `json:"estimatedDeliveryTime"`
	Status                string             `json:"status"`
	StatusHistory         []StatusEntry      `json:"statusHistory"`
	DeliverySignature     *DeliverySignature `json:"deliverySignature,omitempty"`
	CreatedAt             time.Time          `json:"createdAt"`
	UpdatedAt             time.Time          `json:"updatedAt"`
}

// TrackedPackage is the public view: no phone numbers, no ids of accounts.
type TrackedPackage struct {
	TrackingNumber        string        `json:"trackingNumber"`
	Status                string        `json:"status"`
	OriginCity            string        `json:"originCity"`
	DestinationCity       string        `json:"destinationCity"`
	ServiceLevel          string        `json:"serviceLevel"`
	EstimatedDeliveryTime string        `json:"estimatedDeliveryTime"`
	StatusHistory         []StatusEntry `json:"statusHistory"`
	SignerName            string        `json:"signerName,omitempty"`
}

type Quote struct {
	Price             int64   `json:"price"`
	EstimatedTime     string  `json:"estimatedTime"`
	DistanceKm        float64 `json:"distanceKm"`
	EffectiveWeightKg float64 `json:"effectiveWeightKg"`
	UnitPrice         float64 `json:"unitPrice"`
}

type DeliverRequest struct {
	SignerName string `json:"signerName"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

func (d PackageDraft) ToDomain() entities.PackageDraft {
	draft := entities.PackageDraft{
		SenderName:         d.SenderName,
		SenderPhone:        d.SenderPhone,
		RecipientName:      d.RecipientName,
		RecipientPhone:     d.RecipientPhone,
		Description:        d.Description,
		PackageType:        entities.PackageType(d.PackageType),
		PackageCount:       d.PackageCount,
		WeightKg:           d.Weight,
		PackageValue:       d.PackageValue,
		HighValue:          d.HighValue,
		OriginCity:         d.OriginCity,
		DestinationCity:    d.DestinationCity,
		OriginCommune:      d.OriginCommune,
		DestinationCommune: d.DestinationCommune,
		OriginAddress:      d.OriginAddress,
		DestinationAddress: d.DestinationAddress,
		ServiceLevel:       entities.ServiceLevel(d.ServiceLevel),
		DistanceKm:         d.DistanceKm,
		PaymentMethod:      entities.PaymentMethod(d.PaymentMethod),
	}
	if d.Dimensions != nil {
		draft.Dimensions = &entities.Dimensions{
			LengthCm: d.Dimensions.Length,
			WidthCm:  d.Dimensions.Width,
			HeightCm: d.Dimensions.Height,
		}
	}
	return draft
}

func FromPackage(p *entities.Package) Package {
	out := Package{
		ID:                    p.ID,
		TrackingNumber:        p.TrackingNumber,
		SenderID:              p.SenderID,
		CourierID:             p.CourierID,
		SenderName:            p.SenderName,
		SenderPhone:           p.SenderPhone,
		RecipientName:         p.RecipientName,
		RecipientPhone:        p.RecipientPhone,
		Description:           p.Description,
		PackageType:           p.PackageType.String(),
		PackageCount:          p.PackageCount,
		Weight:                p.WeightKg,
		PackageValue:          p.PackageValue,
		HighValue:             p.HighValue,
		OriginCity:            p.OriginCity,
		DestinationCity:       p.DestinationCity,
		OriginCommune:         p.OriginCommune,
		DestinationCommune:    p.DestinationCommune,
		OriginAddress:         p.OriginAddress,
		DestinationAddress:    p.DestinationAddress,
		ServiceLevel:          p.ServiceLevel.String(),
		DistanceKm:            p.DistanceKm,
		Price:                 p.Price,
		PaymentMethod:         p.PaymentMethod.String(),
		EstimatedDeliveryTime: p.EstimatedDeliveryTime,
		Status:                p.Status.String(),
		StatusHistory:         fromHistory(p.StatusHistory),
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
	if p.Dimensions != nil {
		out.Dimensions = &Dimensions{
			Length: p.Dimensions.LengthCm,
			Width:  p.Dimensions.WidthCm,
			Height: p.Dimensions.HeightCm,
		}
	}
	if p.DeliverySignature != nil {
		out.DeliverySignature = &DeliverySignature{
			SignerName: p.DeliverySignature.SignerName,
			SignedAt:   p.DeliverySignature.SignedAt,
		}
	}
	return out
}

func FromPackages(pkgs []entities.Package) []Package {
	out := make([]Package, len(pkgs))
	for i := range pkgs {
		out[i] = FromPackage(&pkgs[i])
	}
	return out
}

func FromTrackedPackage(p *entities.Package) TrackedPackage {
	out := TrackedPackage{
		TrackingNumber:        p.TrackingNumber,
		Status:                p.Status.String(),
		OriginCity:            p.OriginCity,
		DestinationCity:       p.DestinationCity,
		ServiceLevel:          p.ServiceLevel.String(),
		EstimatedDeliveryTime: p.EstimatedDeliveryTime,
		StatusHistory:         fromHistory(p.StatusHistory),
	}
	if p.DeliverySignature != nil {
		out.SignerName = p.DeliverySignature.SignerName
	}
	return out
}

func FromQuote(q entities.Quote) Quote {
	return Quote{
		Price:             q.Price,
		EstimatedTime:     q.ETALabel,
		DistanceKm:        q.DistanceKm,
		EffectiveWeightKg: q.EffectiveWeightKg,
		UnitPrice:         q.UnitPrice,
	}
}

func fromHistory(history []entities.StatusEntry) []StatusEntry {
	out := make([]StatusEntry, len(history))
	for i, h := range history {
		out[i] = StatusEntry{
			Status:    h.Status.String(),
			Timestamp: h.Timestamp,
			Notes:     h.Notes,
		}
	}
	return out
}
