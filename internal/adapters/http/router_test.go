package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/appsync-todo-client/internal/adapters/http"
	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/appsync-todo-client/mocks"
)

func newTestRouter(t *testing.T, path string, mws ...func(http.Handler) http.Handler) (http.Handler, *mocks.MockActions) {
	t.Helper()
	actions := mocks.NewMockActions(t)
	registry := mocks.NewMockHealthRegistry(t)

	ch := handlers.NewCallbackHandler(actions, nil)
	hh := handlers.NewHealthHandler(registry)

	return adapthttp.NewRouter(path, ch, hh, mws...), actions
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		wantPath string
	}{
		{name: "explicit path", path: "/callback", wantPath: "/callback"},
		{name: "empty path is root", path: "", wantPath: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, _ := newTestRouter(t, tt.path)
			mux, ok := router.(*chi.Mux)
			if !ok {
				t.Fatal("router is not *chi.Mux")
			}

			registered := make(map[string]bool)
			err := chi.Walk(mux, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
				registered[method+" "+route] = true
				return nil
			})
			if err != nil {
				t.Fatalf("chi.Walk error: %v", err)
			}

			for _, key := range []string{"GET /health/live", "GET /health/ready", "GET " + tt.wantPath} {
				if !registered[key] {
					t.Errorf("route %s not registered", key)
				}
			}
		})
	}
}

func TestRouter_CallbackReachesActions(t *testing.T) {
	t.Parallel()

	var applied bool
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			applied = true
			next.ServeHTTP(w, r)
		})
	}

	router, actions := newTestRouter(t, "/callback", mw)
	actions.EXPECT().
		CompleteSignIn(mock.Anything, "s1", "c1").
		RunAndReturn(func(context.Context, string, string) error { return nil })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?state=s1&code=c1", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !applied {
		t.Error("middleware not applied")
	}
}

func TestRouter_OtherPathsNotFound(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, "/callback")

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/v1/todos", http.NoBody),
		httptest.NewRequest(http.MethodPost, "/callback", http.NoBody),
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound && rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s %s: status = %d, want 404 or 405", req.Method, req.URL.Path, rec.Code)
		}
	}
}
