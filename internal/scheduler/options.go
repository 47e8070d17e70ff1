package scheduler

import (
	"time"

	"github.com/adenchik/leadboard/pkg/logger"
)

// Option applies a configuration option to the Scheduler.
type Option func(*Scheduler)

// WithLogger sets a custom logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Scheduler) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock injects the time source used for sleep computation.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
	}
}

// WithFallbackSleep sets the sleep used when the advertised next-update
// time is already past.
func WithFallbackSleep(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.fallbackSleep = d
		}
	}
}

// WithEmptySleep sets the sleep used when no region returned data.
func WithEmptySleep(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.emptySleep = d
		}
	}
}

// WithErrorSleep sets the sleep used after a failed cycle.
func WithErrorSleep(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.errorSleep = d
		}
	}
}
