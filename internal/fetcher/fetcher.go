// Package fetcher retrieves the leaderboard for every region concurrently
// and normalizes the result into a single snapshot.
package fetcher

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/adenchik/leadboard/internal/adapters/dotaapi"
	"github.com/adenchik/leadboard/internal/domain/model"
	"github.com/adenchik/leadboard/internal/domain/region"
	"github.com/adenchik/leadboard/pkg/logger"
	"github.com/adenchik/leadboard/pkg/metrics"
)

// LeaderboardAPI is the slice of the remote client the fetcher needs.
type LeaderboardAPI interface {
	DivisionLeaderboard(ctx context.Context, division string, variant int) (*dotaapi.Division, error)
}

// Snapshot is one fetch cycle's result: ranked rows per surviving region
// plus the schedule timestamps, each the maximum across those regions.
type Snapshot struct {
	Regions               map[region.Region][]model.Player
	TimePosted            int64
	NextScheduledPostTime int64
}

// Fetcher fans out one request per region.
type Fetcher struct {
	api     LeaderboardAPI
	regions []region.Region
	variant int
	log     logger.Logger
}

// New constructs a Fetcher covering all regions by default.
func New(api LeaderboardAPI, opts ...Option) *Fetcher {
	f := &Fetcher{
		api:     api,
		regions: region.All(),
		variant: 0,
		log:     logger.Nop(),
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// FetchAll issues one request per region concurrently. A region's failure
// never aborts its siblings; the region is simply absent from the snapshot.
// Returns nil when every region failed.
func (f *Fetcher) FetchAll(ctx context.Context) *Snapshot {
	var (
		mu      sync.Mutex
		results = make(map[region.Region]*dotaapi.Division, len(f.regions))
	)

	var g errgroup.Group
	for _, r := range f.regions {
		r := r
		g.Go(func() error {
			d, err := f.api.DivisionLeaderboard(ctx, r.String(), f.variant)
			if err != nil {
				f.log.Warn(ctx, "region fetch failed",
					logger.String("region", r.String()), logger.Error(err))
				metrics.RecordRegionFetchError(r.String())
				return nil
			}
			mu.Lock()
			results[r] = d
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if len(results) == 0 {
		return nil
	}

	snap := &Snapshot{Regions: make(map[region.Region][]model.Player, len(results))}
	for r, d := range results {
		rows := make([]model.Player, 0, len(d.Entries))
		// Server order is authoritative; ranks are dense from 1.
		for i, e := range d.Entries {
			rows = append(rows, model.Player{
				Region:  r,
				Rank:    i + 1,
				Name:    e.Name,
				TeamID:  e.TeamID,
				TeamTag: e.TeamTag,
				Sponsor: e.Sponsor,
				Country: e.Country,
			})
		}
		snap.Regions[r] = rows

		if d.TimePosted > snap.TimePosted {
			snap.TimePosted = d.TimePosted
		}
		if d.NextScheduledPostTime > snap.NextScheduledPostTime {
			snap.NextScheduledPostTime = d.NextScheduledPostTime
		}
	}
	return snap
}
