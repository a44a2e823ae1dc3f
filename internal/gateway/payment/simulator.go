package payment

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"marketplace/internal/entities"
)

type SimulatorConfig struct {
	LatencyMin  time.Duration
	LatencyMax  time.Duration
	SuccessRate float64
}

// Simulator stands in for the mobile-money processor: it waits a random
// latency and approves with the configured probability.
type Simulator struct {
	cfg    SimulatorConfig
	random func() float64
}

func NewSimulator(cfg SimulatorConfig) *Simulator {
	if cfg.LatencyMax < cfg.LatencyMin {
		cfg.LatencyMax = cfg.LatencyMin
	}
	return &Simulator{
		cfg:    cfg,
		random: rand.Float64,
	}
}

func (s *Simulator) Charge(ctx context.Context, req entities.PaymentRequest) (*entities.PaymentResult, error) {
	if req.Amount <= 0 {
		return &entities.PaymentResult{Status: entities.PaymentFailed}, nil
	}

	timer := time.NewTimer(s.latency())
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	if s.random() >= s.cfg.SuccessRate {
		return &entities.PaymentResult{Status: entities.PaymentFailed}, nil
	}

	return &entities.PaymentResult{
		Status:        entities.PaymentSucceeded,
		TransactionID: fmt.Sprintf("TXN-%08d", rand.IntN(100_000_000)),
	}, nil
}

func (s *Simulator) latency() time.Duration {
	spread := s.cfg.LatencyMax - s.cfg.LatencyMin
	if spread <= 0 {
		return s.cfg.LatencyMin
	}
	return s.cfg.LatencyMin + time.Duration(s.random()*float64(spread))
}
