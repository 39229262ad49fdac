// Package telemetry provides OpenTelemetry tracing and Prometheus metrics.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "dungeoncrawl"
	serviceVersion = "0.1.0"
)

// RunInfo identifies one play session. Width and Height are the configured
// level size; zero means the level follows the terminal size.
type RunInfo struct {
	RunID  string
	Seed   int64
	Width  int
	Height int
}

// Attributes returns the resource attributes every span of the run carries.
// The seed is enough to replay the dungeon layout of a reported trace.
func (r RunInfo) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("service.instance.id", r.RunID),
		attribute.Int64("dungeoncrawl.seed", r.Seed),
		attribute.Int("dungeoncrawl.level.width", r.Width),
		attribute.Int("dungeoncrawl.level.height", r.Height),
		attribute.Bool("dungeoncrawl.level.fit_terminal", r.Width == 0 || r.Height == 0),
		attribute.String("host.name", hostname()),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("process.runtime.version", runtime.Version()),
	}
}

// Setup installs an OTLP HTTP tracer provider for the run. The exporter is
// configured through the standard OTEL_EXPORTER_OTLP_* variables. The
// returned function flushes pending spans and must run before exit.
func Setup(ctx context.Context, run RunInfo) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	// Not merged with resource.Default() to avoid schema URL conflicts
	res, err := resource.New(ctx, resource.WithAttributes(run.Attributes()...))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for one part of the game.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
