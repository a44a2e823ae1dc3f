package pricing

import "errors"

var (
	ErrInvalidDraft        = errors.New("invalid package draft")
	ErrInvalidWeight       = errors.New("invalid weight")
	ErrInvalidDimensions   = errors.New("invalid dimensions")
	ErrInvalidServiceLevel = errors.New("invalid service level")
	ErrInvalidPackageType  = errors.New("invalid package type")
	ErrInvalidCity         = errors.New("invalid city")
	ErrInvalidValue        = errors.New("invalid declared value")
	ErrUnknownDistance     = errors.New("distance is unknown and cannot be derived from communes")
	ErrInvalidConfig       = errors.New("invalid pricing config")

	ErrConfigNotFound = errors.New("pricing config not found")
	ErrCacheMiss      = errors.New("pricing config not cached")
)

// IsValidationError reports whether err rejects the caller's draft or config.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrInvalidDraft, ErrInvalidWeight, ErrInvalidDimensions, ErrInvalidServiceLevel,
		ErrInvalidPackageType, ErrInvalidCity, ErrInvalidValue, ErrInvalidConfig,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
