package usecase

import (
	"context"
	"time"

	"github.com/ObiBat/craefto-automation/internal/ports"
)

// Scheduler wires the interval driver with the research use case.
type Scheduler struct {
	driver   ports.Scheduler
	research *Research
}

// NewScheduler returns a helper to start/stop recurring research runs.
func NewScheduler(driver ports.Scheduler, research *Research) *Scheduler {
	return &Scheduler{driver: driver, research: research}
}

// Start registers the research run with the provided scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.driver == nil || s.research == nil {
		return nil
	}

	job := func(trigger time.Time) {
		if _, err := s.research.RunOnce(ctx); err != nil {
			s.research.logger.Error("scheduled research run failed",
				"trigger", trigger.Format(time.RFC3339), "error", err)
		}
	}

	return s.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying scheduler.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}

	return s.driver.Stop(ctx)
}
