// Package repository defines the leaderboard store interface and errors.
package repository

import (
	"context"

	"github.com/adenchik/leadboard/internal/domain/model"
	"github.com/adenchik/leadboard/internal/domain/region"
)

// Metadata keys written once per successful sync cycle.
const (
	KeyTimePosted            = "time_posted"
	KeyNextScheduledPostTime = "next_scheduled_post_time"
)

// Filter narrows a player lookup. Every field is optional; zero values
// impose no constraint. A rank range applies only when both bounds are set.
type Filter struct {
	RankFrom   *int
	RankTo     *int
	Countries  []string // case-insensitive alpha-2 codes
	Team       string   // "yes" = has team tag, "no" = none, else unconstrained
	NamePrefix string   // case-insensitive prefix match
}

// Store provides read/write access to the persisted leaderboard state.
type Store interface {
	// ReplaceRegion atomically swaps all rows of one region for the given
	// set. A concurrent reader observes the old set or the new set, never
	// a mix. Rank values in rows are taken as-is.
	ReplaceRegion(ctx context.Context, r region.Region, rows []model.Player) error

	// UpsertMetadata inserts or overwrites one metadata key.
	UpsertMetadata(ctx context.Context, key string, value int64) error

	// Metadata returns the two sync timestamps; absent keys read as zero.
	Metadata(ctx context.Context) (model.Meta, error)

	// FindPlayers returns the region's rows matching the filter,
	// ordered by rank ascending.
	FindPlayers(ctx context.Context, r region.Region, f Filter) ([]model.Player, error)

	// DistinctCountries returns the upper-cased country codes observed
	// among the region's rows, in no particular order.
	DistinctCountries(ctx context.Context, r region.Region) ([]string, error)
}
