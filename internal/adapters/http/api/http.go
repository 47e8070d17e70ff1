// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/adenchik/leadboard/internal/adapters/repository"
	"github.com/adenchik/leadboard/internal/domain/model"
	"github.com/adenchik/leadboard/internal/domain/region"
	"github.com/adenchik/leadboard/pkg/metrics"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// FindPlayers returns a region's rows matching the filter, rank order.
	FindPlayers(ctx context.Context, r region.Region, f repository.Filter) ([]model.Player, error)

	// Countries returns the region's distinct-country index, sorted by
	// display name.
	Countries(ctx context.Context, r region.Region) ([]model.CountryOption, error)

	// Metadata returns the current sync timestamps.
	Metadata(ctx context.Context) (model.Meta, error)

	// Regions lists the fixed region set.
	Regions() []region.Region
}

// Server wires HTTP routes for the query API.
type Server struct {
	healthHandler      *HealthHandler
	leaderboardHandler *LeaderboardHandler
	regionsHandler     *RegionsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		leaderboardHandler: NewLeaderboardHandler(deps),
		regionsHandler:     NewRegionsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
	mux.HandleFunc("/api/regions", MetricsMiddleware(s.regionsHandler.HandleGetRegions, "regions"))
	mux.HandleFunc("/api/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
