package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "domsbench/dom"

// RunAttrs describes one timed measurement for span annotation.
type RunAttrs struct {
	Method   string
	Vertices int
	Arcs     int
}

// StartRun starts a span named "dom.<method>", tagged with the graph's
// size. internal/bench.RunOnce calls this once around its whole timing
// loop, so one span covers every repetition of a measurement; it never
// wraps the algorithms' inner loops themselves.
func StartRun(ctx context.Context, attrs RunAttrs) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	return tracer.Start(ctx, "dom."+attrs.Method,
		trace.WithAttributes(
			attribute.String("dom.method", attrs.Method),
			attribute.Int("dom.vertices", attrs.Vertices),
			attribute.Int("dom.arcs", attrs.Arcs),
		),
	)
}

// RecordCounters attaches the algorithm's diagnostic counters to span as
// attributes once the run has finished.
func RecordCounters(span trace.Span, icount, ccount, scount int) {
	span.SetAttributes(
		attribute.Int("dom.icount", icount),
		attribute.Int("dom.ccount", ccount),
		attribute.Int("dom.scount", scount),
	)
}
