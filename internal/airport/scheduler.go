// internal/airport/scheduler.go
package airport

import (
	"context"
	"errors"
	"time"

	"github.com/metarmap/metarmap/internal/logging"
	"github.com/metarmap/metarmap/internal/metrics"
)

// Scheduler drives the fixed-interval refresh loop.
type Scheduler struct {
	registry *Registry
	fetcher  Fetcher
	interval time.Duration
	log      *logging.Logger
}

// NewScheduler creates a scheduler with immutable config.
func NewScheduler(registry *Registry, fetcher Fetcher, interval time.Duration, log *logging.Logger) (*Scheduler, error) {
	if registry == nil || registry.Len() == 0 {
		return nil, errors.New("scheduler: at least one airport required")
	}
	if fetcher == nil {
		return nil, errors.New("scheduler: fetcher required")
	}
	if interval <= 0 {
		return nil, errors.New("scheduler: interval must be > 0")
	}
	return &Scheduler{
		registry: registry,
		fetcher:  fetcher,
		interval: interval,
		log:      log,
	}, nil
}

// Run polls until ctx is canceled: one sequential pass over every
// airport, then a fixed sleep. The sleep starts after the pass ends,
// so a slow cycle pushes the next one back; there is no catch-up.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		s.registry.UpdateAll(ctx, s.fetcher)
		metrics.PollCycles.Inc()
		s.log.Debug("poll cycle complete", "airports", s.registry.Len())

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.interval):
		}
	}
}
