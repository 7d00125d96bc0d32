// Package telemetry sets up OpenTelemetry tracing and metrics for the
// client. The stdout exporter is meant for local debugging and writes to the
// log destination, never to the terminal the TUI or command output owns.
//
//	providers, err := telemetry.Setup(ctx, telemetry.Settings{
//	    ServiceName: "todoapp",
//	    Exporter:    telemetry.ExporterStdout,
//	    Out:         logFile,
//	})
//	defer providers.Shutdown(ctx)
//	providers.Metrics.GraphQLOperationTotal.Add(ctx, 1)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Metric attribute keys.
var (
	AttrHTTPMethod    = attribute.Key("http.method")
	AttrHTTPStatus    = attribute.Key("http.status_code")
	AttrPeerService   = attribute.Key("peer.service")
	AttrResult        = attribute.Key("result")
	AttrOperationKind = attribute.Key("graphql.operation.type")
	AttrOperationName = attribute.Key("graphql.operation.name")
	AttrPhase         = attribute.Key("graphql.subscription.phase")
)

var errEmptyEndpoint = errors.New("otlp exporter requires an endpoint")

// Settings selects the exporter.
type Settings struct {
	ServiceName string
	Exporter    string
	Endpoint    string // OTLP/HTTP collector URL
	Out         io.Writer
}

// Providers owns the registered SDK providers. The zero value is the
// disabled state: nil providers and nil Metrics, which every instrumented
// component accepts.
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	Metrics *Metrics
}

// Setup creates both providers, installs them and the W3C propagators as
// the otel globals, and registers the instruments.
func Setup(ctx context.Context, s Settings) (*Providers, error) {
	if s.Out == nil {
		s.Out = os.Stdout
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(s.ServiceName),
	))
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spans, err := newSpanExporter(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}
	readings, err := newMetricExporter(ctx, s)
	if err != nil {
		_ = spans.Shutdown(ctx)
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	p := &Providers{
		Tracer: sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res)),
		Meter: sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(readings)),
			sdkmetric.WithResource(res),
		),
	}
	if p.Metrics, err = NewMetrics(p.Meter, s.ServiceName); err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}

	otel.SetTracerProvider(p.Tracer)
	otel.SetMeterProvider(p.Meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// Shutdown flushes pending spans and readings. Safe on the zero value.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func newSpanExporter(ctx context.Context, s Settings) (sdktrace.SpanExporter, error) {
	switch s.Exporter {
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithWriter(s.Out))
	case ExporterOTLP:
		host, insecure, err := collector(s.Endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("unsupported exporter %q", s.Exporter)
	}
}

func newMetricExporter(ctx context.Context, s Settings) (sdkmetric.Exporter, error) {
	switch s.Exporter {
	case ExporterStdout:
		return stdoutmetric.New(stdoutmetric.WithWriter(s.Out))
	case ExporterOTLP:
		host, insecure, err := collector(s.Endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("unsupported exporter %q", s.Exporter)
	}
}

// collector splits an endpoint such as "http://otel-collector:4318" into
// the host:port the OTLP exporters take and whether TLS is off. A bare
// host:port is taken as plain HTTP.
func collector(endpoint string) (host string, insecure bool, err error) {
	if endpoint == "" {
		return "", false, errEmptyEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, true, nil
	}
	return u.Host, u.Scheme != "https", nil
}
