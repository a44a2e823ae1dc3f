package settlement

import "errors"

var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidCourierID = errors.New("invalid courier id")
	ErrInvalidRate      = errors.New("invalid commission rate")
	ErrInvalidOperator  = errors.New("invalid payment operator")
	ErrInvalidPhone     = errors.New("invalid phone")
	ErrNotSettleable    = errors.New("only delivered packages with a courier can be settled")

	ErrForbidden       = errors.New("operation not allowed for this user")
	ErrNotCourier      = errors.New("user is not a courier")
	ErrCourierNotFound = errors.New("courier not found")
	ErrAlreadySettled  = errors.New("package already settled")
	ErrPaymentDeclined = errors.New("payment declined")
)
