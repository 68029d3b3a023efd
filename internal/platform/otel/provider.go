// Package otel wires OpenTelemetry tracing for service processes.
package otel

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	envEnabled  = "ROMAN_NUMERAL_OTEL_ENABLED"
	envEndpoint = "ROMAN_NUMERAL_OTEL_ENDPOINT"
	envExporter = "ROMAN_NUMERAL_OTEL_EXPORTER"

	exporterConsole = "console"
)

// consoleOutput receives console spans; tests swap it.
var consoleOutput io.Writer = os.Stdout

// Setup initialises OpenTelemetry tracing for the given service.
//
// Tracing is opt-in. ROMAN_NUMERAL_OTEL_EXPORTER=console prints spans to
// stdout; otherwise a non-empty ROMAN_NUMERAL_OTEL_ENDPOINT exports over
// OTLP/HTTP. ROMAN_NUMERAL_OTEL_ENABLED=false disables both, and Setup then
// returns a no-op shutdown function without registering a global provider.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	if strings.EqualFold(os.Getenv(envEnabled), "false") {
		return noop, nil
	}

	exporter, err := newExporter(ctx)
	if err != nil {
		return noop, err
	}
	if exporter == nil {
		return noop, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, fmt.Errorf("otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

// newExporter returns nil when no exporter is configured.
func newExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	if strings.EqualFold(strings.TrimSpace(os.Getenv(envExporter)), exporterConsole) {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(consoleOutput))
		if err != nil {
			return nil, fmt.Errorf("otel console exporter: %w", err)
		}
		return exporter, nil
	}

	endpoint := strings.TrimSpace(os.Getenv(envEndpoint))
	if endpoint == "" {
		return nil, nil
	}
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("otel otlp exporter: %w", err)
	}
	return exporter, nil
}
