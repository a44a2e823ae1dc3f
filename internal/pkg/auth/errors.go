package auth

import "errors"

var (
	ErrMissingToken = errors.New("authorization header is empty")
	ErrMalformed    = errors.New("invalid authorization header format")
	ErrInvalidToken = errors.New("invalid or expired token")
)
