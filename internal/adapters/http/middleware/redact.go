package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/logging"
)

const redacted = "[REDACTED]"

// sensitiveParams is the set of query parameters the sign-in redirect may
// carry that grant or bind a session.
var sensitiveParams = map[string]bool{
	"code":          true,
	"state":         true,
	"access_token":  true,
	"id_token":      true,
	"refresh_token": true,
}

// RedactHeaders converts headers into slog attributes, replacing sensitive
// values with "[REDACTED]". Multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, redacted))
		} else {
			attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
		}
	}
	return attrs
}

// RedactQuery returns the query string with sensitive parameter values
// replaced, for logging.
func RedactQuery(q url.Values) string {
	if len(q) == 0 {
		return ""
	}
	out := make(url.Values, len(q))
	for key, vals := range q {
		if sensitiveParams[strings.ToLower(key)] {
			out[key] = []string{redacted}
			continue
		}
		out[key] = vals
	}
	return out.Encode()
}
