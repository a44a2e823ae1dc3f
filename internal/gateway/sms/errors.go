package sms

import "errors"

var ErrEmptyPhone = errors.New("phone number is empty")
