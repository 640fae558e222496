package flip

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/grindlemire/go-flip"

// telemetry reports reorders as spans and animation outcomes as counters
// through the global OpenTelemetry providers (no-ops unless configured).
type telemetry struct {
	tracer   trace.Tracer
	played   metric.Int64Counter
	rejected metric.Int64Counter
	misuse   metric.Int64Counter
}

func newTelemetry() *telemetry {
	meter := otel.Meter(instrumentationName)
	return &telemetry{
		tracer: otel.Tracer(instrumentationName),
		played: counter(meter, "flip.animations.played",
			"Invert animations started by tracked regions."),
		rejected: counter(meter, "flip.captures.rejected",
			"Geometry captures dropped because the element had no size."),
		misuse: counter(meter, "flip.regions.misuse",
			"Lifecycle steps skipped because a region did not resolve to exactly one element."),
	}
}

func counter(meter metric.Meter, name, desc string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		return noop.Int64Counter{}
	}
	return c
}

func (t *telemetry) startReorder(kind string, tick *Tick, items int) (context.Context, trace.Span) {
	return t.tracer.Start(context.Background(), "flip."+kind+".reorder",
		trace.WithAttributes(
			attribute.String("flip.tick.id", tick.ID.String()),
			attribute.Int64("flip.tick.seq", int64(tick.Seq)),
			attribute.Int("flip.items", items),
		),
	)
}

func (t *telemetry) animationPlayed(id string) {
	t.played.Add(context.Background(), 1, metric.WithAttributes(attribute.String("flip.id", id)))
}

func (t *telemetry) captureRejected(id string) {
	t.rejected.Add(context.Background(), 1, metric.WithAttributes(attribute.String("flip.id", id)))
}

func (t *telemetry) regionMisused(id string) {
	t.misuse.Add(context.Background(), 1, metric.WithAttributes(attribute.String("flip.id", id)))
}
