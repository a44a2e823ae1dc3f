package entities

import "time"

type ServiceLevel string

const (
	ServiceExpress  ServiceLevel = "EXPRESS"
	ServiceStandard ServiceLevel = "STANDARD"
	ServiceEco      ServiceLevel = "ECO"
)

func (s ServiceLevel) String() string {
	return string(s)
}

type PaymentMethod string

const (
	PaymentWave        PaymentMethod = "WAVE"
	PaymentMobileMoney PaymentMethod = "MOBILE_MONEY"
	PaymentCash        PaymentMethod = "CASH"
)

func (p PaymentMethod) String() string {
	return string(p)
}

// IsCash reports whether the courier collects the money in hand.
func (p PaymentMethod) IsCash() bool {
	return p == PaymentCash
}

type PackageType string

const (
	PackageDocument PackageType = "DOCUMENT"
	PackageDevice   PackageType = "DEVICE"
	PackageOther    PackageType = "OTHER"
)

func (p PackageType) String() string {
	return string(p)
}

// Dimensions are in centimetres.
type Dimensions struct {
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

type StatusEntry struct {
	Status    PackageStatus
	Timestamp time.Time
	Notes     string
}

type DeliverySignature struct {
	SignerName string
	SignedAt   time.Time
}

type Package struct {
	ID             string
	TrackingNumber string

	SenderID  string
	CourierID *string

	SenderName     string
	SenderPhone    string
	RecipientName  string
	RecipientPhone string

	Description  string
	PackageType  PackageType
	PackageCount int
	WeightKg     float64
	Dimensions   *Dimensions
	PackageValue *int64
	HighValue    bool

	OriginCity         string
	DestinationCity    string
	OriginCommune      string
	DestinationCommune string
	OriginAddress      string
	DestinationAddress string
	ServiceLevel       ServiceLevel
	DistanceKm         *float64

	Price                 int64
	PaymentMethod         PaymentMethod
	EstimatedDeliveryTime string

	Status            PackageStatus
	StatusHistory     []StatusEntry
	DeliverySignature *DeliverySignature

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PackageDraft is what a sender submits; pricing and identity are filled in by the registry.
type PackageDraft struct {
	SenderName     string
	SenderPhone    string
	RecipientName  string
	RecipientPhone string

	Description  string
	PackageType  PackageType
	PackageCount int
	WeightKg     float64
	Dimensions   *Dimensions
	PackageValue *int64
	HighValue    bool

	OriginCity         string
	DestinationCity    string
	OriginCommune      string
	DestinationCommune string
	OriginAddress      string
	DestinationAddress string
	ServiceLevel       ServiceLevel
	DistanceKm         *float64

	PaymentMethod PaymentMethod
}

type PackageFilter struct {
	Status    *PackageStatus
	City      *string
	SenderID  *string
	CourierID *string
	Limit     uint64
}

// PackageTransition is the persisted form of one state change: the registry
// applies it only if the stored status still equals From.
type PackageTransition struct {
	PackageID string
	From      PackageStatus
	Entry     StatusEntry
	// CourierID is set only on PENDING -> ACCEPTED and claims an unassigned row.
	CourierID *string
	Signature *DeliverySignature
}

// LastEntry returns the most recent history entry.
func (p *Package) LastEntry() (StatusEntry, bool) {
	if len(p.StatusHistory) == 0 {
		return StatusEntry{}, false
	}
	return p.StatusHistory[len(p.StatusHistory)-1], true
}

func (p *Package) IsAssignedTo(courierID string) bool {
	return p.CourierID != nil && *p.CourierID == courierID
}
