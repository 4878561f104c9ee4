package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestStartRunReturnsValidSpan(t *testing.T) {
	ctx, span := StartRun(context.Background(), RunAttrs{Method: "idfs", Vertices: 10, Arcs: 15})
	defer span.End()

	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	if span == nil {
		t.Fatal("expected non-nil span")
	}
	var _ trace.Span = span
}

func TestRecordCountersDoesNotPanic(t *testing.T) {
	_, span := StartRun(context.Background(), RunAttrs{Method: "snca", Vertices: 4, Arcs: 4})
	defer span.End()
	RecordCounters(span, 2, 10, 1)
}
