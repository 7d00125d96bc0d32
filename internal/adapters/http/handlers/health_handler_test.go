package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/http/dto"
	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/appsync-todo-client/mocks"
)

// --- Liveness ---

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.HealthResponse](t, rec); resp.Status != "ok" {
		t.Errorf("status = %q, want %q", resp.Status, "ok")
	}
}

// --- Readiness ---

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    map[string]error
		wantCode   int
		wantStatus string
		wantChecks map[string]string
	}{
		{
			name:       "all healthy",
			results:    map[string]error{"graphql-api": nil, "graphql-realtime": nil},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]string{"graphql-api": "ok", "graphql-realtime": "ok"},
		},
		{
			name: "one failing",
			results: map[string]error{
				"graphql-api": errors.New("graphql-api: failing (circuit breaker open)"),
				"identity":    nil,
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantChecks: map[string]string{
				"graphql-api": "graphql-api: failing (circuit breaker open)",
				"identity":    "ok",
			},
		},
		{
			name:       "no checkers",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)

			rec := httptest.NewRecorder()
			handlers.NewHealthHandler(registry).Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			requireStatus(t, rec, tt.wantCode)
			resp := decodeJSON[dto.HealthResponse](t, rec)
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			for name, want := range tt.wantChecks {
				if resp.Checks[name] != want {
					t.Errorf("checks[%s] = %q, want %q", name, resp.Checks[name], want)
				}
			}
		})
	}
}
