// Package httpclient is the outbound HTTP stack shared by the GraphQL
// transport and the identity provider client. Every request passes, in
// order, through a circuit breaker, an optional rate limiter, header
// injection, a client span and the retry loop:
//
//	client := httpclient.New(&cfg.GraphQL.Client, "graphql-api", metrics, logger)
//	resp, err := client.Do(ctx, req)
//
// Mutations and token exchanges are not safe to replay and opt out of
// retries with WithoutRetry. golang.org/x/oauth2 takes a plain *http.Client;
// StandardClient provides one backed by the same pipeline.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/config"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/telemetry"
)

// UserAgent is sent on every outbound request that does not set its own.
const UserAgent = "todoapp/1"

type (
	requestIDKey struct{}
	noRetryKey   struct{}
)

// WithRequestID makes Do send id as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithoutRetry makes Do send the request once whatever the retry policy.
func WithoutRetry(ctx context.Context) context.Context {
	return context.WithValue(ctx, noRetryKey{}, true)
}

func retryDisabled(ctx context.Context) bool {
	off, _ := ctx.Value(noRetryKey{}).(bool)
	return off
}

// IsCircuitOpen reports whether the breaker refused the request without
// sending it.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client sends requests to one named downstream service.
type Client struct {
	httpClient  *http.Client
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter // nil when unlimited
	retryCfg    retryConfig
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New builds a client for serviceName, which labels its spans, metrics,
// breaker and health report. metrics may be nil.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		serviceName: serviceName,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}

	maxFailures := cfg.CircuitBreaker.MaxFailures
	c.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		OnStateChange: c.logBreakerChange,
	})

	if rps := cfg.RateLimit.RequestsPerSecond; rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rps), cfg.RateLimit.BurstSize)
	}
	return c
}

// Do sends req through the pipeline.
//
// A 2xx-4xx response is returned with a nil error. When retries run out on
// a retryable status, the last response is returned alongside the error so
// the caller can still read and close its body. A breaker rejection, rate
// limiter cancellation or transport failure returns a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}

		if id, _ := ctx.Value(requestIDKey{}).(string); id != "" {
			req.Header.Set("X-Request-ID", id)
		}
		if req.Header.Get("User-Agent") == "" {
			req.Header.Set("User-Agent", UserAgent)
		}

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		req = req.WithContext(spanCtx)
		err := c.doWithRetry(spanCtx, req, &resp)
		endSpan(span, resp, err)
		return struct{}{}, err
	})

	c.recordMetrics(ctx, method, time.Since(start), resp, err)
	return resp, err
}

// StandardClient adapts the pipeline to an *http.Client.
func (c *Client) StandardClient() *http.Client {
	return &http.Client{Transport: roundTripper{client: c}}
}

type roundTripper struct {
	client *Client
}

// RoundTrip hands back a retry-exhausted response without its error; the
// oauth2 package reads the provider's error body itself.
func (rt roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := rt.client.Do(req.Context(), req.Clone(req.Context()))
	if resp != nil {
		return resp, nil
	}
	return nil, err
}

// Name is the service name given to New.
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck derives health from the breaker state alone; it sends
// nothing.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

func (c *Client) logBreakerChange(name string, from, to gobreaker.State) {
	level := slog.LevelWarn
	if to == gobreaker.StateClosed {
		level = slog.LevelInfo
	}
	c.logger.LogAttrs(context.Background(), level, "circuit breaker state change",
		slog.String("breaker", name),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
