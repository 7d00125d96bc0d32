// Package http provides the loopback HTTP adapter that receives the hosted
// sign-in redirect, plus the health endpoints served alongside it.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with the callback and health routes
// registered. Middleware is applied globally in the order given.
func NewRouter(
	callbackPath string,
	callbackHandler *handlers.CallbackHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	if callbackPath == "" {
		callbackPath = "/"
	}
	r.Get(callbackPath, callbackHandler.Complete)

	return r
}
