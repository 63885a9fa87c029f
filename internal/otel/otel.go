package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/quannhg/graduation-invitation/pkg/utils"
)

// ServiceName identifies this service in traces.
const ServiceName = "graduation-invitation"

// Settings selects where and how much to trace.
type Settings struct {
	Endpoint    string
	Environment string
	// SampleRatio is the share of new traces kept; parents' decisions win.
	SampleRatio float64
}

// Init installs the tracer provider and propagators. With no endpoint tracing
// stays on the global no-op provider and the returned cleanup does nothing.
func Init(ctx context.Context, s Settings) (func(context.Context) error, error) {
	if s.Endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	if s.SampleRatio < 0 || s.SampleRatio > 1 {
		return nil, fmt.Errorf("sample ratio must be within [0, 1], got %v", s.SampleRatio)
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(s.Endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		return nil, utils.ErrorHandler(err, "failed to create OTLP exporter")
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(s.SampleRatio))),
		trace.WithResource(newResource(s.Environment)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	utils.Logger.WithField("endpoint", s.Endpoint).Info("Tracing enabled")

	return func(ctx context.Context) error {
		return utils.ErrorHandler(tp.Shutdown(ctx), "failed to shutdown tracer provider")
	}, nil
}

func newResource(env string) *resource.Resource {
	attrs := []attribute.KeyValue{semconv.ServiceName(ServiceName)}
	if env != "" {
		attrs = append(attrs, semconv.DeploymentEnvironment(env))
	}
	return resource.NewWithAttributes(semconv.SchemaURL, attrs...)
}
