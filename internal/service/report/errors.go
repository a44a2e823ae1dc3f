package report

import "errors"

var ErrForbidden = errors.New("operation not allowed for this user")
