// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/adenchik/leadboard/internal/adapters/repository"
	"github.com/adenchik/leadboard/internal/domain/model"
	"github.com/adenchik/leadboard/internal/domain/region"
)

// LeaderboardHandler handles leaderboard queries.
type LeaderboardHandler struct {
	deps Dependencies
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(deps Dependencies) *LeaderboardHandler {
	return &LeaderboardHandler{deps: deps}
}

// leaderboardResponse is the full query result the presentation layer
// renders: filtered rows, sync timestamps and the country index.
type leaderboardResponse struct {
	Region     string                `json:"region"`
	Players    []model.Player        `json:"players"`
	LastUpdate int64                 `json:"last_update"`
	NextUpdate int64                 `json:"next_update"`
	Countries  []model.CountryOption `json:"countries"`
}

// HandleGetLeaderboard handles
// GET /api/leaderboard?region=R&rank_from=&rank_to=&countries=&team=&name=.
// All filter parameters are optional and composable; malformed values are
// dropped rather than rejected.
func (h *LeaderboardHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_leaderboard"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	reg, ok := region.Parse(q.Get("region"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown_region", NewKind(op, ErrUnknownRegion))
		return
	}

	filter := repository.Filter{
		RankFrom:   parseOptionalInt(q.Get("rank_from")),
		RankTo:     parseOptionalInt(q.Get("rank_to")),
		Countries:  splitCSV(q.Get("countries")),
		Team:       q.Get("team"),
		NamePrefix: q.Get("name"),
	}

	players, err := h.deps.FindPlayers(r.Context(), reg, filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	if players == nil {
		players = []model.Player{}
	}

	meta, err := h.deps.Metadata(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	countries, err := h.deps.Countries(r.Context(), reg)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	if countries == nil {
		countries = []model.CountryOption{}
	}

	writeJSON(w, http.StatusOK, leaderboardResponse{
		Region:     reg.String(),
		Players:    players,
		LastUpdate: meta.TimePosted,
		NextUpdate: meta.NextScheduledPostTime,
		Countries:  countries,
	})
}

// parseOptionalInt returns nil for empty or non-positive-integer input.
func parseOptionalInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return nil
	}
	return &n
}

// splitCSV splits a comma-separated list, dropping empty elements.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
