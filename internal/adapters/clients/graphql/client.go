package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/telemetry"
)

// Client issues queries, mutations and subscriptions through a Transport.
// It is safe for concurrent use; no ordering is promised between
// concurrent operations.
type Client struct {
	transport Transport
	metrics   *telemetry.Metrics
	logger    *slog.Logger
}

// NewClient returns a Client over transport. If metrics is nil, metric
// recording is skipped.
func NewClient(transport Transport, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	return &Client{transport: transport, metrics: metrics, logger: logger}
}

// Query runs a query document and decodes its data into out (skipped when
// out is nil). Queries are idempotent and may be retried by the transport.
func (c *Client) Query(ctx context.Context, document string, variables map[string]any, out any) error {
	return c.do(ctx, KindQuery, document, variables, out)
}

// Mutate runs a mutation document exactly once and decodes its data into
// out. The transport never retries a mutation and no idempotency key is
// attached, so a repeated call creates a repeated effect.
func (c *Client) Mutate(ctx context.Context, document string, variables map[string]any, out any) error {
	return c.do(ctx, KindMutation, document, variables, out)
}

// Subscribe opens an event stream for document. Subscription documents use
// the realtime transport; any other document is run once and presented as a
// start, next, complete stream. The stream ends when ctx is cancelled or
// Unsubscribe is called.
func (c *Client) Subscribe(ctx context.Context, document string, variables map[string]any) (*Subscription, error) {
	op, err := NewOperation(document, variables)
	if err != nil {
		return nil, err
	}

	sub, err := c.transport.Subscribe(ctx, op)
	c.record(ctx, op, err)
	if err != nil {
		return nil, fmt.Errorf("subscribing %s: %w", op.Name, err)
	}
	return sub, nil
}

func (c *Client) do(ctx context.Context, want Kind, document string, variables map[string]any, out any) error {
	op, err := NewOperation(document, variables)
	if err != nil {
		return err
	}
	if op.Kind != want {
		return fmt.Errorf("operation %q is a %s, not a %s: %w", op.Name, op.Kind, want, domain.ErrValidation)
	}

	resp, err := c.transport.Do(ctx, op)
	c.record(ctx, op, err)
	if err != nil {
		c.logger.DebugContext(ctx, "graphql operation failed",
			slog.String("operation", op.Name),
			slog.String("kind", string(op.Kind)),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", op.Kind, op.Name, err)
	}

	if out == nil || isNull(resp.Data) {
		return nil
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("decoding %s data: %w: %w", op.Name, domain.ErrNetwork, err)
	}
	return nil
}

func (c *Client) record(ctx context.Context, op *Operation, err error) {
	if c.metrics == nil {
		return
	}
	c.metrics.GraphQLOperationTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrOperationKind.String(string(op.Kind)),
		telemetry.AttrOperationName.String(op.Name),
		telemetry.AttrResult.String(resultOf(err)),
	))
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrAuth):
		return "auth_error"
	case errors.Is(err, domain.ErrGraphQL):
		return "graphql_error"
	case errors.Is(err, domain.ErrValidation):
		return "validation_error"
	default:
		return "network_error"
	}
}
