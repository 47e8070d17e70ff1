// Package scheduler drives the fetch -> persist -> sleep sync loop.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adenchik/leadboard/internal/adapters/repository"
	"github.com/adenchik/leadboard/internal/domain/model"
	"github.com/adenchik/leadboard/internal/domain/region"
	"github.com/adenchik/leadboard/internal/fetcher"
	"github.com/adenchik/leadboard/pkg/logger"
	"github.com/adenchik/leadboard/pkg/metrics"
)

// Default sleep durations between cycles.
const (
	defaultFallbackSleep = 1 * time.Hour   // advertised next-update time is stale
	defaultEmptySleep    = 5 * time.Minute // every region failed
	defaultErrorSleep    = 1 * time.Minute // persistence or internal failure
)

// Fetcher is the slice of the fetch layer the scheduler needs.
type Fetcher interface {
	FetchAll(ctx context.Context) *fetcher.Snapshot
}

// Store is the write surface the scheduler persists into.
type Store interface {
	ReplaceRegion(ctx context.Context, r region.Region, rows []model.Player) error
	UpsertMetadata(ctx context.Context, key string, value int64) error
}

// Scheduler owns all mutable sync state. It is the sole writer of the
// store; construct exactly one per process.
type Scheduler struct {
	fetcher Fetcher
	store   Store
	log     logger.Logger
	now     func() time.Time

	fallbackSleep time.Duration
	emptySleep    time.Duration
	errorSleep    time.Duration
}

// New constructs a Scheduler. The fetcher and store are required; clock and
// sleep durations are injectable for tests.
func New(f Fetcher, s Store, opts ...Option) *Scheduler {
	sc := &Scheduler{
		fetcher:       f,
		store:         s,
		log:           logger.Nop(),
		now:           time.Now,
		fallbackSleep: defaultFallbackSleep,
		emptySleep:    defaultEmptySleep,
		errorSleep:    defaultErrorSleep,
	}
	for _, o := range opts {
		o(sc)
	}
	return sc
}

// Run loops until ctx is cancelled. Nothing inside a cycle is fatal: every
// failure mode resolves to a sleep duration and the loop continues.
func (s *Scheduler) Run(ctx context.Context) {
	s.log.Info(ctx, "sync loop started")
	for {
		d := s.runCycle(ctx)
		if !s.sleep(ctx, d) {
			s.log.Info(ctx, "sync loop stopped")
			return
		}
	}
}

// runCycle performs one fetch -> persist pass and returns how long to
// sleep before the next one.
func (s *Scheduler) runCycle(ctx context.Context) (sleep time.Duration) {
	cycleID := uuid.NewString()
	log := s.log

	// A panic anywhere in the cycle is a failed cycle, not a dead loop.
	defer func() {
		if r := recover(); r != nil {
			log.Error(ctx, "sync cycle panicked",
				logger.String("cycle_id", cycleID), logger.Any("panic", r))
			metrics.RecordSyncCycle(metrics.CycleError)
			sleep = s.errorSleep
		}
	}()

	snap := s.fetcher.FetchAll(ctx)
	if snap == nil {
		log.Warn(ctx, "no leaderboard data this cycle",
			logger.String("cycle_id", cycleID), logger.Duration("retry_in", s.emptySleep))
		metrics.RecordSyncCycle(metrics.CycleEmpty)
		return s.emptySleep
	}

	if err := s.persist(ctx, snap); err != nil {
		log.Error(ctx, "persisting snapshot failed",
			logger.String("cycle_id", cycleID), logger.Error(err))
		metrics.RecordSyncCycle(metrics.CycleError)
		return s.errorSleep
	}

	metrics.RecordSyncCycle(metrics.CycleSuccess)
	metrics.UpdateSyncTimestamps(snap.TimePosted, snap.NextScheduledPostTime)

	sleep = s.nextSleep(snap.NextScheduledPostTime)
	log.Info(ctx, "leaderboards updated",
		logger.String("cycle_id", cycleID),
		logger.Int("regions", len(snap.Regions)),
		logger.Int64("time_posted", snap.TimePosted),
		logger.Duration("next_update_in", sleep))
	return sleep
}

// persist writes every fetched region and then the metadata. The prior
// committed state of a region stays intact if its replace fails.
func (s *Scheduler) persist(ctx context.Context, snap *fetcher.Snapshot) error {
	for r, rows := range snap.Regions {
		if len(rows) == 0 {
			// An empty payload is treated like a missing region.
			continue
		}
		if err := s.store.ReplaceRegion(ctx, r, rows); err != nil {
			return fmt.Errorf("replace %s: %w", r, err)
		}
	}
	if err := s.store.UpsertMetadata(ctx, repository.KeyTimePosted, snap.TimePosted); err != nil {
		return fmt.Errorf("metadata %s: %w", repository.KeyTimePosted, err)
	}
	if err := s.store.UpsertMetadata(ctx, repository.KeyNextScheduledPostTime, snap.NextScheduledPostTime); err != nil {
		return fmt.Errorf("metadata %s: %w", repository.KeyNextScheduledPostTime, err)
	}
	return nil
}

// nextSleep sleeps exactly until the advertised next post when it is in the
// future, otherwise falls back to a fixed interval so a stale advertisement
// never turns into a tight loop.
func (s *Scheduler) nextSleep(nextScheduled int64) time.Duration {
	now := s.now().Unix()
	if nextScheduled > now {
		return time.Duration(nextScheduled-now) * time.Second
	}
	return s.fallbackSleep
}

// sleep blocks for d or until cancellation; reports false when cancelled.
func (s *Scheduler) sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
