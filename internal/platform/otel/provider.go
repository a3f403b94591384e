// Package otel turns on OTLP trace export when an endpoint is configured.
package otel

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	envEnabled  = "JAVABITE_OTEL_ENABLED"
	envEndpoint = "JAVABITE_OTEL_ENDPOINT"
)

// ShutdownFunc flushes pending spans.
type ShutdownFunc func(context.Context) error

func noop(context.Context) error { return nil }

// exportEndpoint returns the OTLP/HTTP URL, or "" when export is off.
func exportEndpoint() string {
	if strings.EqualFold(strings.TrimSpace(os.Getenv(envEnabled)), "false") {
		return ""
	}
	return strings.TrimSpace(os.Getenv(envEndpoint))
}

// Setup installs the W3C trace-context propagator, so backend calls carry
// traceparent, and, when JAVABITE_OTEL_ENDPOINT is set, a batching tracer
// provider named "javabite-<service>". JAVABITE_OTEL_ENABLED=false turns
// export off without clearing the endpoint.
func Setup(ctx context.Context, service string) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.TraceContext{})
	endpoint := exportEndpoint()
	if endpoint == "" {
		return noop, nil
	}
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return noop, fmt.Errorf("otlp exporter: %w", err)
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName("javabite-"+service)))
	if err != nil {
		return noop, fmt.Errorf("otel resource: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
