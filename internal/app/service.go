// Package app provides the core service that implements the read
// dependencies required by the HTTP API.
package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/adenchik/leadboard/internal/adapters/repository"
	"github.com/adenchik/leadboard/internal/domain/geo"
	"github.com/adenchik/leadboard/internal/domain/model"
	"github.com/adenchik/leadboard/internal/domain/region"
	"github.com/adenchik/leadboard/pkg/logger"
)

// Service answers leaderboard queries against the persisted state. It is a
// read-only consumer of the store; the scheduler is the sole writer.
type Service struct {
	store repository.Store
	log   logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a Service over the given store.
func New(store repository.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		log:   logger.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// FindPlayers returns the region's rows matching the filter, ordered by
// rank. Malformed filter combinations are defaulted away in the store, not
// rejected.
func (s *Service) FindPlayers(ctx context.Context, r region.Region, f repository.Filter) ([]model.Player, error) {
	players, err := s.store.FindPlayers(ctx, r, f)
	if err != nil {
		return nil, fmt.Errorf("find players: %w", err)
	}
	return players, nil
}

// Countries builds the region's distinct-country index: every observed code
// with its display name, sorted by display name. Codes the reference table
// does not know keep their "Unknown" label and sort under it.
func (s *Service) Countries(ctx context.Context, r region.Region) ([]model.CountryOption, error) {
	codes, err := s.store.DistinctCountries(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("distinct countries: %w", err)
	}

	out := make([]model.CountryOption, 0, len(codes))
	for _, code := range codes {
		out = append(out, model.CountryOption{Code: code, Name: geo.Name(code)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}

// Metadata returns the persisted sync timestamps.
func (s *Service) Metadata(ctx context.Context) (model.Meta, error) {
	m, err := s.store.Metadata(ctx)
	if err != nil {
		return model.Meta{}, fmt.Errorf("read metadata: %w", err)
	}
	return m, nil
}

// Regions lists the fixed region set for the presentation layer.
func (s *Service) Regions() []region.Region {
	return region.All()
}
