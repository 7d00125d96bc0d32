package middleware

import "net/http"

// Chain composes middleware so that the first argument is outermost:
//
//	Chain(Recovery, RequestID, Logging)(handler)
//
// is Recovery(RequestID(Logging(handler))).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}
