package otel

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
)

func TestSetupNoopWhenNothingConfigured(t *testing.T) {
	t.Setenv(envEndpoint, "")
	t.Setenv(envEnabled, "")
	t.Setenv(envExporter, "")

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupNoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv(envEndpoint, "http://localhost:4318")
	t.Setenv(envEnabled, "false")
	t.Setenv(envExporter, exporterConsole)

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no actual export happens.
	t.Setenv(envEndpoint, "http://192.0.2.1:4318")
	t.Setenv(envEnabled, "")
	t.Setenv(envExporter, "")

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupConsoleExporterWritesSpans(t *testing.T) {
	t.Setenv(envEndpoint, "")
	t.Setenv(envEnabled, "")
	t.Setenv(envExporter, "console")

	var buf bytes.Buffer
	previous := consoleOutput
	consoleOutput = &buf
	t.Cleanup(func() { consoleOutput = previous })

	shutdown, err := Setup(context.Background(), "console-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, span := otel.Tracer("provider_test").Start(context.Background(), "convert")
	span.End()
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
	if !strings.Contains(buf.String(), `"Name":"convert"`) {
		t.Fatalf("console output missing span: %q", buf.String())
	}
}

func TestSetupNoopShutdownIgnoresCancelledContext(t *testing.T) {
	t.Setenv(envEndpoint, "")
	t.Setenv(envEnabled, "")
	t.Setenv(envExporter, "")

	shutdown, err := Setup(context.Background(), "noop-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}
