package user

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrWeakPassword          = errors.New("password must be at least 6 characters")
	ErrInvalidRole           = errors.New("invalid role")
	ErrInvalidVehicle        = errors.New("invalid vehicle type")
	ErrInvalidCourierType    = errors.New("invalid courier type")
	ErrInvalidCity           = errors.New("invalid operating city")

	ErrInvalidCredentials = errors.New("invalid phone or password")
	ErrUserBlocked        = errors.New("account is blocked")
	ErrForbidden          = errors.New("operation not allowed for this user")
	ErrNotCourier         = errors.New("user is not a courier")

	ErrUserNotFound = errors.New("user not found")
	ErrConflict     = errors.New("phone already registered")
)
