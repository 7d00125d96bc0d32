package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// Metrics are the client's instruments. A nil *Metrics disables recording.
type Metrics struct {
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	GraphQLOperationTotal metric.Int64Counter
	SubscriptionEvents    metric.Int64Counter
}

// NewMetrics registers the instruments on a meter named after the service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	m := &Metrics{}
	var err error

	if m.ClientRequestDuration, err = meter.Float64Histogram("http.client.request.duration",
		metric.WithDescription("Duration of outgoing HTTP requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, instrumentErr("http.client.request.duration", err)
	}
	if m.ClientRequestTotal, err = meter.Int64Counter("http.client.request.total",
		metric.WithDescription("Outgoing HTTP requests by peer and result"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, instrumentErr("http.client.request.total", err)
	}
	if m.GraphQLOperationTotal, err = meter.Int64Counter("graphql.operation.total",
		metric.WithDescription("GraphQL operations issued by type and result"),
		metric.WithUnit("{operation}"),
	); err != nil {
		return nil, instrumentErr("graphql.operation.total", err)
	}
	if m.SubscriptionEvents, err = meter.Int64Counter("graphql.subscription.events",
		metric.WithDescription("Subscription events delivered by phase"),
		metric.WithUnit("{event}"),
	); err != nil {
		return nil, instrumentErr("graphql.subscription.events", err)
	}
	return m, nil
}

func instrumentErr(name string, err error) error {
	return fmt.Errorf("creating %s: %w", name, err)
}
