package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/logging"
)

// Logging logs each request twice, on arrival and on completion, through a
// child logger tagged with the request ID. The child is stored in the
// request context for handlers.
//
// The callback query carries the authorization code, so it is only logged
// at debug level and only after RedactQuery.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			log := logger.With(slog.String("request_id", RequestIDFromContext(r.Context())))
			ctx := logging.WithLogger(r.Context(), log)

			log.LogAttrs(ctx, slog.LevelInfo, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if log.Enabled(ctx, slog.LevelDebug) {
				log.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(r.Header)...)
				log.LogAttrs(ctx, slog.LevelDebug, "request query", slog.String("query", RedactQuery(r.URL.Query())))
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			log.LogAttrs(ctx, completionLevel(rw.statusCode), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// completionLevel raises the level of failed sign-in attempts so they show
// up without debug logging.
func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

