// Package telemetry provides OpenTelemetry tracing for the frame loop.
//
// Tracing is off unless an OTLP endpoint is configured; the frame loop then
// gets a no-op tracer and spans cost nothing.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentation = "raycaster"

// EndpointEnv is the variable that switches tracing on
const EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"

// Enabled reports whether an OTLP endpoint is configured
func Enabled() bool {
	return os.Getenv(EndpointEnv) != ""
}

// Setup installs a global tracer provider exporting frame spans over OTLP
// HTTP. attrs describe the run (backend, map size) and are attached to every
// span. The returned shutdown flushes pending spans.
func Setup(ctx context.Context, attrs ...attribute.KeyValue) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithHost(),
		resource.WithProcessRuntimeName(),
		resource.WithProcessRuntimeVersion(),
		resource.WithAttributes(attribute.String("service.name", instrumentation)),
		resource.WithAttributes(attrs...),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

// Tracer returns the tracer for a component of the game
func Tracer(component string) trace.Tracer {
	return otel.Tracer(instrumentation + "/" + component)
}

// NoopTracer returns a tracer whose spans record nothing
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(instrumentation)
}
