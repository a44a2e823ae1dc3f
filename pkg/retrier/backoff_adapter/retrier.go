package backoff_adapter

import (
	"context"

	"github.com/cenkalti/backoff/v4"
	"marketplace/pkg/retrier"
)

type Retrier struct {
	config retrier.Config
}

func New(config retrier.Config) *Retrier {
	return &Retrier{config: config}
}

func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	var b backoff.BackOff = backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.config.InitialInterval),
		backoff.WithMaxInterval(r.config.MaxInterval),
		backoff.WithMaxElapsedTime(r.config.MaxElapsedTime),
		backoff.WithRandomizationFactor(r.config.Randomization),
		backoff.WithMultiplier(r.config.Multiplier),
	)

	if r.config.MaxAttempts > 0 {
		b = backoff.WithMaxRetries(b, r.config.MaxAttempts-1)
	}

	operation := func() error {
		err := fn(ctx)
		if err != nil && r.config.ShouldRetry != nil && !r.config.ShouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(b, ctx)
	if r.config.OnRetry != nil {
		return backoff.RetryNotify(operation, policy, r.config.OnRetry)
	}
	return backoff.Retry(operation, policy)
}
