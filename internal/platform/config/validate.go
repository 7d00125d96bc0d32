package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var p problems

	p.oneOf("log.level", c.Log.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", c.Log.Format, "json", "text")

	p.check(c.GraphQL.HandshakeTimeout > 0, "graphql.handshake_timeout must be positive")
	p.check(c.GraphQL.ConnectionTimeout >= 0, "graphql.connection_timeout must not be negative")
	c.GraphQL.Client.validate(&p, "graphql.client")
	if region := appSyncRegion(c.GraphQL.Endpoint); region != "" && c.GraphQL.Region != "" {
		p.check(region == c.GraphQL.Region,
			fmt.Sprintf("graphql.region %q does not match endpoint region %q", c.GraphQL.Region, region))
	}

	// Only the authorization code flow yields a refresh token.
	p.check(c.Identity.ResponseType == "code",
		fmt.Sprintf("identity.response_type must be \"code\", got %q", c.Identity.ResponseType))
	p.check(len(c.Identity.Scopes) > 0, "identity.scopes must not be empty")
	// Pool ids are "<region>_<id>".
	if pool, _, ok := strings.Cut(c.Identity.UserPoolID, "_"); ok && c.Identity.Region != "" {
		p.check(pool == c.Identity.Region,
			fmt.Sprintf("identity.user_pool_id %q is not in identity.region %q", c.Identity.UserPoolID, c.Identity.Region))
	}
	c.Identity.Client.validate(&p, "identity.client")

	if c.Callback.Enabled {
		p.check(c.Callback.ReadTimeout > 0, "callback.read_timeout must be positive")
		p.check(c.Callback.WriteTimeout > 0, "callback.write_timeout must be positive")
	}

	p.oneOf("ui.output_format", c.UI.OutputFormat, "json", "yaml")

	if c.Telemetry.Enabled {
		p.oneOf("telemetry.exporter", c.Telemetry.Exporter, "stdout", "otlp")
		p.check(c.Telemetry.Exporter != "otlp" || c.Telemetry.Endpoint != "",
			"telemetry.endpoint must not be empty when exporter is otlp")
	}

	return errors.Join(p...)
}

func (cl *ClientConfig) validate(p *problems, prefix string) {
	p.check(cl.Timeout > 0, prefix+".timeout must be positive")
	p.check(cl.Retry.MaxAttempts >= 1,
		fmt.Sprintf("%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts))
	p.check(cl.Retry.Multiplier > 0,
		fmt.Sprintf("%s.retry.multiplier must be positive, got %g", prefix, cl.Retry.Multiplier))
	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		fmt.Sprintf("%s.circuit_breaker.max_failures must be >= 1, got %d", prefix, cl.CircuitBreaker.MaxFailures))
	p.check(cl.RateLimit.RequestsPerSecond >= 0, prefix+".rate_limit.requests_per_second must not be negative")
	p.check(cl.RateLimit.RequestsPerSecond == 0 || cl.RateLimit.BurstSize >= 1,
		prefix+".rate_limit.burst_size must be >= 1 when rate limiting is enabled")
}

// appSyncRegion extracts the region label of a managed endpoint host such as
// abc.appsync-api.us-west-2.amazonaws.com. Other hosts yield "".
func appSyncRegion(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return ""
	}
	labels := strings.Split(u.Hostname(), ".")
	i := slices.Index(labels, "appsync-api")
	if i < 0 || i+1 >= len(labels) {
		return ""
	}
	return labels[i+1]
}

type problems []error

func (p *problems) check(ok bool, msg string) {
	if !ok {
		*p = append(*p, errors.New(msg))
	}
}

func (p *problems) oneOf(key, got string, allowed ...string) {
	p.check(slices.Contains(allowed, got),
		fmt.Sprintf("%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got))
}
