package dispatch

import "errors"

var (
	ErrInvalidEvent    = errors.New("package id and status are required")
	ErrStatusMismatch  = errors.New("event status never reached by the package")
	ErrUndefinedStatus = errors.New("no handler for package status")
)
