package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/http/dto"
	"github.com/jsamuelsen11/appsync-todo-client/internal/ports"
)

// HealthHandler serves the callback server's probe endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness reports that the callback listener is accepting requests.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: dto.StatusOK})
}

// Readiness reports the GraphQL endpoint, realtime connection and identity
// provider. Any failing component turns the response into a 503.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, healthy := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))
	if !healthy {
		writeJSON(w, r, http.StatusServiceUnavailable, resp)
		return
	}
	writeJSON(w, r, http.StatusOK, resp)
}
