package graphql_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/clients/graphql"
	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/clients/graphql/graphqltest"
	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/config"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/httpclient"
)

const testAPIKey = "da2-testkey"

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testGraphQLConfig(endpoint string) *config.GraphQLConfig {
	return &config.GraphQLConfig{
		Endpoint:         endpoint,
		APIKey:           testAPIKey,
		HandshakeTimeout: 2 * time.Second,
		Client: config.ClientConfig{
			Timeout: 2 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     1,
				InitialInterval: 5 * time.Millisecond,
				MaxInterval:     10 * time.Millisecond,
				Multiplier:      2,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
	}
}

// newTestClient assembles the full transport chain against cfg.
func newTestClient(t *testing.T, cfg *config.GraphQLConfig) (*graphql.Client, *graphql.RealtimeTransport) {
	t.Helper()

	httpClient := httpclient.New(&cfg.Client, "graphql-api", nil, testLogger())
	realtime := graphql.NewRealtimeTransport(cfg, nil, testLogger())
	transport := graphql.Chain(
		graphql.AuthLink(graphql.APIKeyAuth(cfg.APIKey)),
	)(graphql.Split(graphql.NewHTTPTransport(httpClient, cfg.Endpoint, testLogger()), realtime))

	return graphql.NewClient(transport, nil, testLogger()), realtime
}

func newTestServer(t *testing.T) *graphqltest.Server {
	t.Helper()
	srv := graphqltest.NewServer(testAPIKey)
	t.Cleanup(srv.Close)
	return srv
}

// nextEvent waits for the next event or fails the test.
func nextEvent(t *testing.T, sub *graphql.Subscription) (graphql.Event, bool) {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		return ev, ok
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for subscription event")
		return graphql.Event{}, false
	}
}

// expectPhase waits for the next event and asserts its phase.
func expectPhase(t *testing.T, sub *graphql.Subscription, want domain.Phase) graphql.Event {
	t.Helper()
	ev, ok := nextEvent(t, sub)
	require.True(t, ok, "events channel closed, want %s", want)
	require.Equal(t, want, ev.Phase, "event = %+v", ev)
	return ev
}

// expectClosed waits for the events channel to close.
func expectClosed(t *testing.T, sub *graphql.Subscription) {
	t.Helper()
	ev, ok := nextEvent(t, sub)
	require.False(t, ok, "got event %+v, want closed channel", ev)
}

// eventually polls cond until it holds or fails the test.
func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	require.Eventually(t, cond, 3*time.Second, 10*time.Millisecond, msg)
}
