package payment

import "errors"

// ErrUnavailable means the processor refused the request before touching the
// account, so it is safe to send again.
var ErrUnavailable = errors.New("payment processor unavailable")
