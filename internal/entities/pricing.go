package entities

import "time"

type PricingConfig struct {
	BasePriceIntra        int64
	BasePriceInter        int64
	BasePriceDoc          int64
	KmSurchargeInterval   float64
	KmSurchargeAmount     int64
	WeightSurchargeMedium float64
	WeightSurchargeHeavy  float64
	CommissionRate        float64
	UpdatedAt             time.Time
}

func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		BasePriceIntra:        1500,
		BasePriceInter:        3500,
		BasePriceDoc:          2000,
		KmSurchargeInterval:   5,
		KmSurchargeAmount:     500,
		WeightSurchargeMedium: 0.10,
		WeightSurchargeHeavy:  0.30,
		CommissionRate:        0.05,
	}
}

type PricingConfigModify struct {
	BasePriceIntra        *int64
	BasePriceInter        *int64
	BasePriceDoc          *int64
	KmSurchargeInterval   *float64
	KmSurchargeAmount     *int64
	WeightSurchargeMedium *float64
	WeightSurchargeHeavy  *float64
	CommissionRate        *float64
}

// Apply returns a copy of cfg with every set field replaced.
func (m PricingConfigModify) Apply(cfg PricingConfig) PricingConfig {
	if m.BasePriceIntra != nil {
		cfg.BasePriceIntra = *m.BasePriceIntra
	}
	if m.BasePriceInter != nil {
		cfg.BasePriceInter = *m.BasePriceInter
	}
	if m.BasePriceDoc != nil {
		cfg.BasePriceDoc = *m.BasePriceDoc
	}
	if m.KmSurchargeInterval != nil {
		cfg.KmSurchargeInterval = *m.KmSurchargeInterval
	}
	if m.KmSurchargeAmount != nil {
		cfg.KmSurchargeAmount = *m.KmSurchargeAmount
	}
	if m.WeightSurchargeMedium != nil {
		cfg.WeightSurchargeMedium = *m.WeightSurchargeMedium
	}
	if m.WeightSurchargeHeavy != nil {
		cfg.WeightSurchargeHeavy = *m.WeightSurchargeHeavy
	}
	if m.CommissionRate != nil {
		cfg.CommissionRate = *m.CommissionRate
	}
	return cfg
}

type Quote struct {
	Price             int64
	ETALabel          string
	DistanceKm        float64
	EffectiveWeightKg float64
	UnitPrice         float64
}
