package fetcher

import (
	"github.com/adenchik/leadboard/internal/domain/region"
	"github.com/adenchik/leadboard/pkg/logger"
)

// Option applies a configuration option to the Fetcher.
type Option func(*Fetcher)

// WithRegions restricts the fetch to the given regions.
func WithRegions(regions []region.Region) Option {
	return func(f *Fetcher) {
		if len(regions) > 0 {
			f.regions = regions
		}
	}
}

// WithVariant selects the leaderboard variant forwarded to the API.
func WithVariant(v int) Option {
	return func(f *Fetcher) {
		if v >= 0 {
			f.variant = v
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(log logger.Logger) Option {
	return func(f *Fetcher) {
		if log != nil {
			f.log = log
		}
	}
}
