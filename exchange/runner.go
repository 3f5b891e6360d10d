package exchange

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"quantum-exchange/models"
)

// Runner drives an Exchange with a ticker outside the TUI.
type Runner struct {
	Exchange *Exchange
	Interval time.Duration
	Logger   *slog.Logger
	// OnUpdate, if set, is called after Start and after every tick.
	OnUpdate func(Snapshot)
}

// NewRunner returns a runner using the default tick interval.
func NewRunner(ex *Exchange, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		Exchange: ex,
		Interval: models.DefaultConfig.TickInterval,
		Logger:   logger,
	}
}

// Run starts the exchange and blocks until it completes or ctx is done. A
// cancelled context cancels the exchange and returns the context's error.
func (r *Runner) Run(ctx context.Context) error {
	run, err := r.Exchange.Start()
	if err != nil {
		return fmt.Errorf("starting exchange: %w", err)
	}
	r.Logger.Info("exchange started",
		"protocol", r.Exchange.Protocol(),
		"run", run,
		"step", r.Exchange.Step(),
		"interval", r.Interval)
	r.notify()

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.cancel()
			return ctx.Err()
		case <-ticker.C:
			more := r.Exchange.Advance(run)
			r.Logger.Debug("exchange tick", "progress", r.Exchange.Progress())
			r.notify()
			if !more {
				r.Logger.Info("exchange completed",
					"elapsed", r.Exchange.CompletedAt().Sub(r.Exchange.StartedAt()))
				return nil
			}
		}
	}
}

// cancel abandons the exchange, logging how far it got.
func (r *Runner) cancel() {
	progress := r.Exchange.Progress()
	if r.Exchange.Cancel() {
		r.Logger.Warn("exchange cancelled", "progress", progress)
	}
	r.notify()
}

func (r *Runner) notify() {
	if r.OnUpdate != nil {
		r.OnUpdate(r.Exchange.Snapshot())
	}
}
