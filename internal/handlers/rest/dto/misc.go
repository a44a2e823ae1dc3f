package dto

import (
	"time"

	"marketplace/internal/entities"
)

type PingResponse struct {
	Message       *string `json:"message,omitempty"`
	Service       string  `json:"service"`
	UptimeSeconds int64   `json:"uptimeSeconds"`
}

type PricingConfig struct {
	BasePriceIntra        int64     `json:"basePriceIntra"`
	BasePriceInter        int64     `json:"basePriceInter"`
	BasePriceDoc          int64     `json:"basePriceDoc"`
	KmSurchargeInterval   float64   `json:"kmSurchargeInterval"`
	KmSurchargeAmount     int64     `json:"kmSurchargeAmount"`
	WeightSurchargeMedium float64   `json:"weightSurchargeMedium"`
	WeightSurchargeHeavy  float64   `json:"weightSurchargeHeavy"`
	CommissionRate        float64   `json:"commissionRate"`
	UpdatedAt             time.Time `json:"updatedAt,omitzero"`
}

// PricingConfigUpdate leaves absent fields unchanged.
type PricingConfigUpdate struct {
	BasePriceIntra        *int64   `json:"basePriceIntra,omitempty"`
	BasePriceInter        *int64   `json:"basePriceInter,omitempty"`
	BasePriceDoc          *int64   `json:"basePriceDoc,omitempty"`
	KmSurchargeInterval   *float64 `json:"kmSurchargeInterval,omitempty"`
	KmSurchargeAmount     *int64   `json:"kmSurchargeAmount,omitempty"`
	WeightSurchargeMedium *float64 `json:"weightSurchargeMedium,omitempty"`
	WeightSurchargeHeavy  *float64 `json:"weightSurchargeHeavy,omitempty"`
	CommissionRate        *float64 `json:"commissionRate,omitempty"`
}

type RechargeRequest struct {
	Amount   int64  `json:"amount"`
	Phone    string `json:"phone"`
	Operator string `json:"operator"`
}

type Balances struct {
	CourierID       string `json:"courierId"`
	WalletBalance   int64  `json:"walletBalance"`
	EarningsBalance int64  `json:"earningsBalance"`
}

type Notification struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	IsRead           bool      `json:"isRead"`
	Timestamp        time.Time `json:"timestamp"`
	RelatedPackageID *string   `json:"relatedPackageId,omitempty"`
}

type NotificationsResponse struct {
	Unread        int64          `json:"unread"`
	Notifications []Notification `json:"notifications"`
}

type ChangeSignal struct {
	Type      string    `json:"type"`
	PackageID string    `json:"packageId,omitempty"`
	Status    string    `json:"status,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type Overview struct {
	TotalUsers       int64            `json:"totalUsers"`
	TotalCouriers    int64            `json:"totalCouriers"`
	ActiveDeliveries int64            `json:"activeDeliveries"`
	Revenue          int64            `json:"revenue"`
	PackagesByStatus map[string]int64 `json:"packagesByStatus"`
}

func FromPricingConfig(c *entities.PricingConfig) PricingConfig {
	return PricingConfig{
		BasePriceIntra:        c.BasePriceIntra,
		BasePriceInter:        c.BasePriceInter,
		BasePriceDoc:          c.BasePriceDoc,
		KmSurchargeInterval:   c.KmSurchargeInterval,
		KmSurchargeAmount:     c.KmSurchargeAmount,
		WeightSurchargeMedium: c.WeightSurchargeMedium,
		WeightSurchargeHeavy:  c.WeightSurchargeHeavy,
		CommissionRate:        c.CommissionRate,
		UpdatedAt:             c.UpdatedAt,
	}
}

func (u PricingConfigUpdate) ToDomain() entities.PricingConfigModify {
	return entities.PricingConfigModify{
		BasePriceIntra:        u.BasePriceIntra,
		BasePriceInter:        u.BasePriceInter,
		BasePriceDoc:          u.BasePriceDoc,
		KmSurchargeInterval:   u.KmSurchargeInterval,
		KmSurchargeAmount:     u.KmSurchargeAmount,
		WeightSurchargeMedium: u.WeightSurchargeMedium,
		WeightSurchargeHeavy:  u.WeightSurchargeHeavy,
		CommissionRate:        u.CommissionRate,
	}
}

func FromBalances(b *entities.Balances) Balances {
	return Balances{
		CourierID:       b.CourierID,
		WalletBalance:   b.WalletBalance,
		EarningsBalance: b.EarningsBalance,
	}
}

func FromNotifications(list []entities.Notification) []Notification {
	out := make([]Notification, len(list))
	for i, n := range list {
		out[i] = Notification{
			ID:               n.ID,
			UserID:           n.UserID,
			Title:            n.Title,
			Message:          n.Message,
			IsRead:           n.IsRead,
			Timestamp:        n.Timestamp,
			RelatedPackageID: n.RelatedPackageID,
		}
	}
	return out
}

func FromChangeSignal(s entities.ChangeSignal) ChangeSignal {
	return ChangeSignal{
		Type:      string(s.Type),
		PackageID: s.PackageID,
		Status:    s.Status.String(),
		Timestamp: s.Timestamp,
	}
}

func FromOverview(o *entities.Overview) Overview {
	byStatus := make(map[string]int64, len(o.PackagesByStatus))
	for status, n := range o.PackagesByStatus {
		byStatus[status.String()] = n
	}
	return Overview{
		TotalUsers:       o.TotalUsers,
		TotalCouriers:    o.TotalCouriers,
		ActiveDeliveries: o.ActiveDeliveries,
		Revenue:          o.Revenue,
		PackagesByStatus: byStatus,
	}
}
