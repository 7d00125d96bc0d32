// Package config provides configuration loading and validation for the client.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the client.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	GraphQL   GraphQLConfig   `koanf:"graphql"`
	Identity  IdentityConfig  `koanf:"identity"`
	Callback  CallbackConfig  `koanf:"callback"`
	UI        UIConfig        `koanf:"ui"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// LogConfig holds structured logging settings. When File is set, log output
// is appended to that file instead of stderr (the TUI owns the terminal).
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

// GraphQLConfig holds the managed GraphQL endpoint and its credential.
//
// Endpoint and APIKey are deliberately not validated at load time: a
// malformed endpoint only surfaces when the first operation is issued.
type GraphQLConfig struct {
	Endpoint          string        `koanf:"endpoint"`
	RealtimeEndpoint  string        `koanf:"realtime_endpoint"`
	Region            string        `koanf:"region"`
	APIKey            string        `koanf:"api_key"`
	HandshakeTimeout  time.Duration `koanf:"handshake_timeout"`
	ConnectionTimeout time.Duration `koanf:"connection_timeout"`
	Client            ClientConfig  `koanf:"client"`
}

// IdentityConfig holds the hosted-UI identity provider parameters.
type IdentityConfig struct {
	UserPoolID      string       `koanf:"user_pool_id"`
	ClientID        string       `koanf:"client_id"`
	Region          string       `koanf:"region"`
	Domain          string       `koanf:"domain"`
	Scopes          []string     `koanf:"scopes"`
	RedirectSignIn  string       `koanf:"redirect_sign_in"`
	RedirectSignOut string       `koanf:"redirect_sign_out"`
	ResponseType    string       `koanf:"response_type"`
	SessionFile     string       `koanf:"session_file"`
	Client          ClientConfig `koanf:"client"`
}

// CallbackConfig holds settings for the loopback server that receives the
// sign-in redirect. The listen address is derived from
// identity.redirect_sign_in.
type CallbackConfig struct {
	Enabled      bool          `koanf:"enabled"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	OutputFormat string `koanf:"output_format"`
}

// ClientConfig holds outbound HTTP client settings.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting. A zero RequestsPerSecond
// disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
