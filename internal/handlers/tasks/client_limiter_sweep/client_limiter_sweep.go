package client_limiter_sweep

import (
	"context"
	"time"

	"marketplace/pkg/logger"
)

type Limiter interface {
	Sweep() int
}

// ClientLimiterSweep forgets clients of the login limiter that went quiet.
type ClientLimiterSweep struct {
	log      logger.Logger
	limiter  Limiter
	interval time.Duration
}

func NewClientLimiterSweep(log logger.Logger, limiter Limiter, interval time.Duration) *ClientLimiterSweep {
	return &ClientLimiterSweep{
		log:      log,
		limiter:  limiter,
		interval: interval,
	}
}

func (c *ClientLimiterSweep) TTL() time.Duration {
	return c.interval
}

func (c *ClientLimiterSweep) Do(context.Context) error {
	if removed := c.limiter.Sweep(); removed > 0 {
		c.log.With(
			logger.NewField("removed_clients", removed),
		).Info("client limiter sweep")
	}
	return nil
}

func (c *ClientLimiterSweep) Info() string {
	return "client limiter sweep"
}
