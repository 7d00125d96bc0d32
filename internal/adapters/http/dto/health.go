package dto

import "github.com/jsamuelsen11/appsync-todo-client/internal/platform/health"

// Health statuses.
const (
	StatusOK       = "ok"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// HealthResponse is the body of the health endpoints.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToReadinessResponse summarizes registry results. Healthy components
// report "ok"; failing ones report their error.
func ToReadinessResponse(results map[string]error) (HealthResponse, bool) {
	checks, healthy := health.Summary(results)

	resp := HealthResponse{Status: StatusReady, Checks: make(map[string]string, len(checks))}
	if !healthy {
		resp.Status = StatusNotReady
	}
	for _, c := range checks {
		if c.Err != nil {
			resp.Checks[c.Name] = c.Err.Error()
		} else {
			resp.Checks[c.Name] = StatusOK
		}
	}
	return resp, healthy
}
