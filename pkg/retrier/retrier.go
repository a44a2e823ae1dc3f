package retrier

import (
	"context"
	"errors"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// MaxAttempts caps the number of calls, including the first one. Zero means
	// only MaxElapsedTime bounds the retries.
	MaxAttempts uint64

	// nil retries every error; otherwise only errors for which it returns true.
	ShouldRetry ShouldRetryFunc

	// OnRetry, if set, is called before each wait with the error that caused it.
	OnRetry func(err error, wait time.Duration)
}

// RetryUnless retries everything except the listed errors (and context cancellation).
func RetryUnless(permanent ...error) ShouldRetryFunc {
	return func(err error) bool {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}
		for _, p := range permanent {
			if errors.Is(err, p) {
				return false
			}
		}
		return true
	}
}
