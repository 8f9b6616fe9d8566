package service

import (
	"context"
	"log/slog"
	"time"
)

// Scheduler triggers the repricing job at a fixed interval, the way the
// original deployment's scheduled trigger fired it every 10 minutes.
// Invocations are serial: the next tick does not start a run while the
// previous one is still in flight, because both execute on the same goroutine.
type Scheduler struct {
	repricer *Repricer
	interval time.Duration
	log      *slog.Logger
}

// NewScheduler constructs a Scheduler that runs repricer every interval.
func NewScheduler(repricer *Repricer, interval time.Duration, log *slog.Logger) *Scheduler {
	return &Scheduler{repricer: repricer, interval: interval, log: log}
}

// Run blocks, repricing the catalog once per interval until ctx is cancelled.
// Call it from its own goroutine in the composition root. Errors inside a run
// are handled (logged) by the Repricer itself; nothing propagates out of the
// loop except via ctx.
func (s *Scheduler) Run(ctx context.Context) {
	s.log.Info("repricing scheduler started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("repricing scheduler stopped")
			return
		case <-ticker.C:
			s.repricer.RunOnce(ctx)
		}
	}
}
