package pricing

import (
	"math"
	"strings"

	"marketplace/internal/entities"
)

const (
	shortHaulMaxKm    = 5.0
	shortHaulFare     = 900
	shortHaulETA      = "1H - 2H"
	surchargeFromKm   = 15.0
	defaultKmInterval = 5.0

	intraExpressPremium = 1000
	intraEcoDiscount    = 500
	interExpressPremium = 2000

	volumetricDivisor = 5000.0
	mediumWeightKg    = 5.0
	heavyWeightKg     = 20.0

	insuranceRate = 0.05
	minUnitPrice  = 500.0

	// float sums such as 1500*1.1 land a hair above the integer
	ceilEpsilon = 1e-6
)

var etaLabels = map[entities.ServiceLevel]string{
	entities.ServiceExpress:  "24H",
	entities.ServiceStandard: "48H",
	entities.ServiceEco:      "72H",
}

// Estimate prices a draft against a tariff. It has no side effects: the same
// draft and config always give the same quote.
func Estimate(draft entities.PackageDraft, cfg entities.PricingConfig) (entities.Quote, error) {
	quote := entities.Quote{ETALabel: etaLabels[draft.ServiceLevel]}
	if quote.ETALabel == "" {
		quote.ETALabel = etaLabels[entities.ServiceStandard]
	}

	var base float64
	if isInterCity(draft) {
		base = float64(cfg.BasePriceInter)
		if draft.PackageType == entities.PackageDocument {
			base = float64(cfg.BasePriceDoc)
		}
		if draft.ServiceLevel == entities.ServiceExpress {
			base += interExpressPremium
		}
		if d, ok := ResolveDistance(draft); ok {
			quote.DistanceKm = d
		}
	} else {
		distance, ok := ResolveDistance(draft)
		if !ok {
			return entities.Quote{}, ErrUnknownDistance
		}
		quote.DistanceKm = distance
		base = intraCityBase(distance, draft.ServiceLevel, cfg)
		if distance <= shortHaulMaxKm {
			quote.ETALabel = shortHaulETA
		}
	}

	quote.EffectiveWeightKg = effectiveWeight(draft)
	unit := base * WeightMultiplier(quote.EffectiveWeightKg, cfg)
	if draft.HighValue && draft.PackageValue != nil && *draft.PackageValue > 0 {
		unit += math.Ceil(float64(*draft.PackageValue) * insuranceRate)
	}
	quote.UnitPrice = math.Max(unit, minUnitPrice)
	quote.Price = MultiParcelTotal(quote.UnitPrice, draft.PackageCount)

	return quote, nil
}

// ResolveDistance prefers an explicit distance and falls back to the commune table.
func ResolveDistance(draft entities.PackageDraft) (float64, bool) {
	if draft.DistanceKm != nil {
		return *draft.DistanceKm, true
	}
	return CommuneDistanceKm(draft.OriginCommune, draft.DestinationCommune)
}

func isInterCity(draft entities.PackageDraft) bool {
	return !strings.EqualFold(strings.TrimSpace(draft.OriginCity), strings.TrimSpace(draft.DestinationCity))
}

func intraCityBase(distance float64, level entities.ServiceLevel, cfg entities.PricingConfig) float64 {
	if distance <= shortHaulMaxKm {
		return shortHaulFare
	}

	base := float64(cfg.BasePriceIntra)
	switch level {
	case entities.ServiceExpress:
		base += intraExpressPremium
	case entities.ServiceEco:
		base -= intraEcoDiscount
	}

	if distance > surchargeFromKm {
		interval := cfg.KmSurchargeInterval
		if interval <= 0 {
			interval = defaultKmInterval
		}
		steps := math.Ceil((distance - surchargeFromKm) / interval)
		base += steps * float64(cfg.KmSurchargeAmount)
	}
	return base
}

func effectiveWeight(draft entities.PackageDraft) float64 {
	if draft.Dimensions == nil {
		return draft.WeightKg
	}
	d := draft.Dimensions
	return math.Max(draft.WeightKg, d.LengthCm*d.WidthCm*d.HeightCm/volumetricDivisor)
}

// WeightMultiplier returns 1 up to 5 kg, then the medium band up to 20 kg, then the heavy band.
func WeightMultiplier(weightKg float64, cfg entities.PricingConfig) float64 {
	switch {
	case weightKg > heavyWeightKg:
		return 1 + cfg.WeightSurchargeHeavy
	case weightKg > mediumWeightKg:
		return 1 + cfg.WeightSurchargeMedium
	default:
		return 1
	}
}

// MultiParcelTotal charges the first unit in full, units 2-3 at 80% and the
// rest at 70%, rounding the sum up.
func MultiParcelTotal(unit float64, count int) int64 {
	if count < 1 {
		count = 1
	}

	var total float64
	for i := 1; i <= count; i++ {
		switch {
		case i == 1:
			total += unit
		case i <= 3:
			total += unit * 0.8
		default:
			total += unit * 0.7
		}
	}
	return int64(math.Ceil(total - ceilEpsilon))
}
