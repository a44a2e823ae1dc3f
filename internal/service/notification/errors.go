package notification

import "errors"

var (
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidNotificationID = errors.New("invalid notification id")
	ErrMissingTitle          = errors.New("notification title is required")

	ErrNotificationNotFound = errors.New("notification not found")
)
