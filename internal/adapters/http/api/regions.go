// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// RegionsHandler serves the fixed region list.
type RegionsHandler struct {
	deps Dependencies
}

// NewRegionsHandler creates a new regions handler.
func NewRegionsHandler(deps Dependencies) *RegionsHandler {
	return &RegionsHandler{deps: deps}
}

type regionsResponse struct {
	Regions []string `json:"regions"`
}

// HandleGetRegions handles GET /api/regions requests.
func (h *RegionsHandler) HandleGetRegions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	regions := h.deps.Regions()
	out := make([]string, 0, len(regions))
	for _, reg := range regions {
		out = append(out, reg.String())
	}
	writeJSON(w, http.StatusOK, regionsResponse{Regions: out})
}
