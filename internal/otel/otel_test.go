package otel

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func TestInitWithoutEndpoint(t *testing.T) {
	cleanup, err := Init(context.Background(), Settings{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := cleanup(context.Background()); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
}

func TestInitRejectsSampleRatio(t *testing.T) {
	for _, ratio := range []float64{-0.1, 1.5} {
		if _, err := Init(context.Background(), Settings{Endpoint: "localhost:4318", SampleRatio: ratio}); err == nil {
			t.Fatalf("ratio %v accepted", ratio)
		}
	}
}

func TestNewResource(t *testing.T) {
	set := newResource("production").Set()

	if v, ok := set.Value(semconv.ServiceNameKey); !ok || v.AsString() != ServiceName {
		t.Fatalf("service.name = %v", v)
	}
	if v, ok := set.Value(attribute.Key("deployment.environment")); !ok || v.AsString() != "production" {
		t.Fatalf("deployment.environment = %v", v)
	}
	if _, ok := newResource("").Set().Value(attribute.Key("deployment.environment")); ok {
		t.Fatalf("empty environment should not be recorded")
	}
}
