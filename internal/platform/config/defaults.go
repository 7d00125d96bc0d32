package config

const (
	defaultRetryMaxAttempts = 1
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
//
// Retries default to a single attempt: queries and mutations are issued
// exactly once unless a profile opts in.
func defaults() map[string]any {
	return map[string]any{
		"log.level":  "info",
		"log.format": "json",
		"log.file":   "",

		"graphql.region":             "us-west-2",
		"graphql.handshake_timeout":  "15s",
		"graphql.connection_timeout": "0s",

		"graphql.client.timeout":                         "30s",
		"graphql.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"graphql.client.retry.initial_interval":          "100ms",
		"graphql.client.retry.max_interval":              "10s",
		"graphql.client.retry.multiplier":                defaultRetryMultiplier,
		"graphql.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"graphql.client.circuit_breaker.timeout":         "30s",
		"graphql.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"graphql.client.rate_limit.requests_per_second":  0,
		"graphql.client.rate_limit.burst_size":           0,

		"identity.scopes":        []string{"phone", "email", "profile", "openid", "aws.cognito.signin.user.admin"},
		"identity.response_type": "code",
		"identity.session_file":  "",

		"identity.client.timeout":                         "15s",
		"identity.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"identity.client.retry.initial_interval":          "100ms",
		"identity.client.retry.max_interval":              "5s",
		"identity.client.retry.multiplier":                defaultRetryMultiplier,
		"identity.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"identity.client.circuit_breaker.timeout":         "30s",
		"identity.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"identity.client.rate_limit.requests_per_second":  0,
		"identity.client.rate_limit.burst_size":           0,

		"callback.enabled":       true,
		"callback.read_timeout":  "5s",
		"callback.write_timeout": "10s",
		"callback.idle_timeout":  "60s",

		"ui.output_format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todoapp",
	}
}
