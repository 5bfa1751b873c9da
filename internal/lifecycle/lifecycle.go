// Package lifecycle owns the process lifetime: it drives the periodic polling
// loop and blocks until a termination signal or context cancellation.
package lifecycle

import (
	"context"
	"os/signal"
	"time"

	"go.uber.org/zap"
)

// Ticker is one invocation of the periodic polling loop.
type Ticker interface {
	Tick()
}

// Controller runs a Ticker on a fixed period until terminated.
type Controller struct {
	interval time.Duration
	ticker   Ticker
	logger   *zap.Logger
}

// New returns a controller invoking t every interval.
func New(interval time.Duration, t Ticker, logger *zap.Logger) *Controller {
	return &Controller{interval: interval, ticker: t, logger: logger}
}

// Run blocks until the context is cancelled or a termination signal (SIGINT,
// SIGTERM) arrives, invoking the ticker on every period in between. Repeated
// signals are idempotent. The timer is stopped on the way out; a tick already
// in flight when termination is requested is allowed to finish.
func (c *Controller) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, terminationSignals()...)
	defer stop()

	timer := time.NewTicker(c.interval)
	defer timer.Stop()

	c.logger.Info("polling for MIDI events", zap.Duration("interval", c.interval))
	for {
		select {
		case <-timer.C:
			c.ticker.Tick()
		case <-ctx.Done():
			c.logger.Info("termination requested, shutting down")
			return nil
		}
	}
}
