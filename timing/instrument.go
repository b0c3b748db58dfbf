package timing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const scopeName = "github.com/katalvlaran/shortest/timing"

// Metric names.
const (
	MetricDuration = "sssp_compute_duration_us"
	MetricTotal    = "sssp_compute_total"
)

// Instrument wraps one computation in a span and records its duration.
// With no OpenTelemetry SDK installed every call is a no-op.
type Instrument struct {
	tracer   trace.Tracer
	duration metric.Int64Histogram
	total    metric.Int64Counter
	err      error
}

// NewInstrument builds an Instrument from the given providers; nil providers
// fall back to the otel globals.
func NewInstrument(tp trace.TracerProvider, mp metric.MeterProvider) *Instrument {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(scopeName)

	in := &Instrument{tracer: tp.Tracer(scopeName)}
	in.duration, in.err = meter.Int64Histogram(
		MetricDuration,
		metric.WithDescription("Elapsed microseconds of the timed shortest-path region"),
		metric.WithUnit("us"),
	)
	if in.err != nil {
		return in
	}
	in.total, in.err = meter.Int64Counter(
		MetricTotal,
		metric.WithDescription("Total number of shortest-path computations"),
	)

	return in
}

// Err reports an instrument creation failure, if any. Recording is skipped then.
func (in *Instrument) Err() error { return in.err }

// Begin opens the sssp.compute span.
func (in *Instrument) Begin(ctx context.Context, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return in.tracer.Start(ctx, "sssp.compute", trace.WithAttributes(attrs...))
}

// Outcome is what Finish attaches to the span and metrics.
type Outcome struct {
	Micros    int64
	Vertices  int
	Edges     int
	Reachable int
	Region    Region
	Err       error
}

// Finish records the outcome and ends span.
func (in *Instrument) Finish(ctx context.Context, span trace.Span, o Outcome) {
	defer span.End()

	success := o.Err == nil
	span.SetAttributes(
		attribute.Int("sssp.vertices", o.Vertices),
		attribute.Int("sssp.edges", o.Edges),
		attribute.Int("sssp.reachable", o.Reachable),
		attribute.Int64("sssp.micros", o.Micros),
		attribute.String("sssp.region", string(o.Region)),
	)
	if !success {
		span.RecordError(o.Err)
		span.SetStatus(codes.Error, o.Err.Error())
	}

	if in.err != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.Bool("success", success),
		attribute.String("region", string(o.Region)),
	)
	in.total.Add(ctx, 1, attrs)
	if success {
		in.duration.Record(ctx, o.Micros, attrs)
	}
}
