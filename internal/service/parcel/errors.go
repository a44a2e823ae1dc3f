package parcel

import "errors"

var (
	ErrInvalidPackageID      = errors.New("invalid package id")
	ErrInvalidTrackingNumber = errors.New("invalid tracking number")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrInvalidDescription    = errors.New("invalid description")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrInvalidOperator       = errors.New("invalid payment operator")
	ErrMissingSignerName     = errors.New("signer name is required")

	ErrForbidden           = errors.New("operation not allowed for this user")
	ErrPackageNotFound     = errors.New("package not found")
	ErrCourierBlocked      = errors.New("courier account is blocked")
	ErrInsufficientDeposit = errors.New("deposit below the minimum required to accept jobs")
	ErrPaymentDeclined     = errors.New("payment declined")

	ErrAlreadyAccepted     = errors.New("package already accepted by another courier")
	ErrStatusConflict      = errors.New("package status changed concurrently")
	ErrTrackingNumberTaken = errors.New("tracking number already in use")
	ErrChargeNotApplied    = errors.New("sender charged but package not stored")
)
