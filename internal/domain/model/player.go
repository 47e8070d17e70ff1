// Package model contains domain models passed between layers.
package model

import "github.com/adenchik/leadboard/internal/domain/region"

// Player is one ranked leaderboard row. Optional fields are pointers so a
// missing value survives the round trip through storage as NULL.
type Player struct {
	Region  region.Region `json:"-"`
	Rank    int           `json:"rank"`
	Name    string        `json:"name"`
	TeamID  *int64        `json:"team_id,omitempty"`
	TeamTag *string       `json:"team_tag,omitempty"`
	Sponsor *string       `json:"sponsor,omitempty"`
	Country *string       `json:"country,omitempty"`
}

// HasTeam reports whether the player carries a non-empty team tag.
func (p Player) HasTeam() bool {
	return p.TeamTag != nil && *p.TeamTag != ""
}

// Meta holds the two sync timestamps, epoch seconds. Both are the maximum
// across the regions that succeeded in the most recent cycle.
type Meta struct {
	TimePosted            int64 `json:"time_posted"`
	NextScheduledPostTime int64 `json:"next_scheduled_post_time"`
}

// CountryOption is one entry of a region's distinct-country index:
// an upper-cased ISO 3166 alpha-2 code plus its display name.
type CountryOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
