package ports

import "context"

// HealthChecker reports whether a remote dependency is usable.
type HealthChecker interface {
	// Name identifies the dependency in reports, e.g. "graphql-api" or
	// "graphql-realtime". Several checkers may share a name.
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must not
	// outlive ctx.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry aggregates checkers for the callback server's readiness
// endpoint and the status command.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every check and keys the outcome by name; nil is
	// healthy.
	CheckAll(ctx context.Context) map[string]error
}
