package pricing

import (
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

var supportedCities = map[string]struct{}{
	"Abidjan": {},
	"Korhogo": {},
}

func isSupportedCity(city string) bool {
	_, ok := supportedCities[strings.TrimSpace(city)]
	return ok
}

func isValidServiceLevel(level entities.ServiceLevel) bool {
	switch level {
	case entities.ServiceExpress, entities.ServiceStandard, entities.ServiceEco:
		return true
	default:
		return false
	}
}

func isValidPackageType(t entities.PackageType) bool {
	switch t {
	case entities.PackageDocument, entities.PackageDevice, entities.PackageOther:
		return true
	default:
		return false
	}
}

// ValidateDraft checks the fields the tariff depends on.
func ValidateDraft(draft entities.PackageDraft) error {
	if draft.WeightKg <= 0 {
		return ErrInvalidWeight
	}
	if d := draft.Dimensions; d != nil && (d.LengthCm < 0 || d.WidthCm < 0 || d.HeightCm < 0) {
		return ErrInvalidDimensions
	}
	if !isValidServiceLevel(draft.ServiceLevel) {
		return ErrInvalidServiceLevel
	}
	if !isValidPackageType(draft.PackageType) {
		return ErrInvalidPackageType
	}
	if !isSupportedCity(draft.OriginCity) {
		return fmt.Errorf("%w: origin %q", ErrInvalidCity, draft.OriginCity)
	}
	if !isSupportedCity(draft.DestinationCity) {
		return fmt.Errorf("%w: destination %q", ErrInvalidCity, draft.DestinationCity)
	}
	if draft.PackageValue != nil && *draft.PackageValue < 0 {
		return ErrInvalidValue
	}
	if draft.DistanceKm != nil && *draft.DistanceKm < 0 {
		return fmt.Errorf("%w: negative distance", ErrInvalidDraft)
	}
	return nil
}

func validateConfig(cfg entities.PricingConfig) error {
	switch {
	case cfg.BasePriceIntra <= 0, cfg.BasePriceInter <= 0, cfg.BasePriceDoc <= 0:
		return fmt.Errorf("%w: base prices must be positive", ErrInvalidConfig)
	case cfg.KmSurchargeInterval < 0, cfg.KmSurchargeAmount < 0:
		return fmt.Errorf("%w: km surcharge must not be negative", ErrInvalidConfig)
	case cfg.WeightSurchargeMedium < 0, cfg.WeightSurchargeHeavy < 0:
		return fmt.Errorf("%w: weight surcharge must not be negative", ErrInvalidConfig)
	case cfg.CommissionRate < 0 || cfg.CommissionRate >= 1:
		return fmt.Errorf("%w: commission rate must be in [0, 1)", ErrInvalidConfig)
	}
	return nil
}
