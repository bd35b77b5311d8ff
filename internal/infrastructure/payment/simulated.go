// Package payment holds the payment processor adapters.
package payment

import (
	"context"
	"time"

	"github.com/propelrent/rentwise/internal/core/ports"
)

const defaultDelay = 2 * time.Second

// SimulatedProcessor settles every charge after a fixed delay. It stands in
// for a real payment gateway.
type SimulatedProcessor struct {
	delay time.Duration
	// Decide, when set, is consulted once the delay has elapsed. A non-nil
	// error declines the charge.
	Decide func(req ports.ChargeRequest) error
}

// NewSimulatedProcessor returns a processor that waits delay before settling.
// A negative delay falls back to the default; zero settles immediately.
func NewSimulatedProcessor(delay time.Duration) *SimulatedProcessor {
	if delay < 0 {
		delay = defaultDelay
	}
	return &SimulatedProcessor{delay: delay}
}

// Charge blocks until the delay elapses or ctx is done.
func (p *SimulatedProcessor) Charge(ctx context.Context, req ports.ChargeRequest) error {
	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	if p.Decide != nil {
		return p.Decide(req)
	}
	return nil
}
