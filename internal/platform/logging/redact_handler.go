package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists header names (lowercase) whose values never reach
// a log record. The masq layer redacts attributes with these names and the
// callback server's header dump consults the same set.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
	"set-cookie":    true,
}

// sensitiveFields are attribute names that carry credentials or one-time
// sign-in material.
var sensitiveFields = []string{
	"password",
	"secret",
	"token",
	"access_token",
	"refresh_token",
	"id_token",
	"code",
	"code_verifier",
	"state",
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// jwtPattern needs 10+ characters per segment so version strings and
	// hostnames do not match.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	// appSyncKeyPattern matches managed GraphQL API keys (da2-...) wherever
	// they appear, e.g. inside an error message echoing a header.
	appSyncKeyPattern = regexp.MustCompile(`\bda2-[a-z0-9]{20,}\b`)

	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// newRedactAttr returns a masq ReplaceAttr function for
// slog.HandlerOptions. Attributes are redacted by name first; the regexes
// catch secrets embedded in free-form values.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+6)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(appSyncKeyPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)

	return masq.New(opts...)
}
