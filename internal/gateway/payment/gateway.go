package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/entities"
	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 10 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxAttempts     = 3
)

// Gateway charges a phone number through a mobile-money processor. A decline
// is a normal result, not an error, and is never retried.
type Gateway struct {
	processor processor
	retrier   retrier
}

func New(processor processor) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxAttempts:     maxAttempts,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		processor: processor,
		retrier:   backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) InitiatePayment(ctx context.Context, req entities.PaymentRequest) (*entities.PaymentResult, error) {
	var result *entities.PaymentResult

	err := g.executeWithMetrics(ctx, req.Operator, func(ctx context.Context) error {
		var err error
		result, err = g.processor.Charge(ctx, req)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("gateway payment, initiate %d via %s: %w", req.Amount, req.Operator, err)
	}

	return result, nil
}

func isRetryable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, operator entities.PaymentOperator, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	outcome := outcomeOf(err)
	GatewayRequestDuration.WithLabelValues(operator.String(), outcome).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(operator.String(), outcome).Inc()
	}

	return err
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "cancelled"
	default:
		return "error"
	}
}
