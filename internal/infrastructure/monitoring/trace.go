// Package monitoring wraps the Assignment Core's pipeline stages
// (normalize, build, solve, extract) in OpenTelemetry spans so a
// caller with a configured SDK/exporter gets stage-level timing for
// free; without one, these calls are harmless no-ops (the tracer
// provider defaults to otel's no-op implementation).
package monitoring

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/flightops/rostercore"

func tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// StartStage begins a span named "roster.<stage>" and returns the
// derived context plus an end function the caller defers. attrs are
// recorded as span attributes (e.g. mechanic/slot counts).
func StartStage(ctx context.Context, stage string, attrs ...attribute.KeyValue) (context.Context, func(err error)) {
	ctx, span := tracer().Start(ctx, "roster."+stage, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}
}
