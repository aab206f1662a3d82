package observability

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"

	"github.com/secure-pipeline/sample-api/internal/config"
)

func TestNewTracer_Disabled(t *testing.T) {
	tracer, err := NewTracer(config.TracingConfig{Enabled: false}, config.AppConfig{})
	if err != nil {
		t.Fatalf("NewTracer() error = %v", err)
	}
	if tracer == nil {
		t.Fatal("NewTracer() returned nil")
	}

	ctx, span := tracer.StartSpan(context.Background(), "test_span",
		attribute.String("key", "value"),
	)
	if ctx == nil {
		t.Error("StartSpan returned nil context")
	}
	if span == nil {
		t.Error("StartSpan returned nil span")
	}
	span.End()

	if err := tracer.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}
