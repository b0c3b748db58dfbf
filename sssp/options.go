package sssp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/shortest/core"
	"github.com/katalvlaran/shortest/dijkstra"
	"github.com/katalvlaran/shortest/timing"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("sssp: invalid option supplied")

// Options configures Compute.
type Options struct {
	Source       core.VertexID
	Region       timing.Region
	LenientCount bool
	MaxLineBytes int // 0 keeps the loader default
	Logger       *slog.Logger
	Clock        timing.Clock
	Instrument   *timing.Instrument

	err error
}

// Option configures Compute via functional arguments.
type Option func(*Options)

// DefaultOptions returns source 1, the load+solve region, strict header
// parsing, a discard logger, the system clock and the global otel providers.
func DefaultOptions() Options {
	return Options{
		Source:     dijkstra.DefaultSource,
		Region:     timing.RegionLoadAndSolve,
		Logger:     slog.New(discardHandler{}),
		Clock:      timing.SystemClock{},
		Instrument: timing.NewInstrument(nil, nil),
	}
}

// WithSource sets the starting vertex (v ≥ 1).
func WithSource(v core.VertexID) Option {
	return func(o *Options) {
		if v < 1 {
			o.err = fmt.Errorf("%w: source must be ≥ 1 (%d)", ErrOptionViolation, v)
			return
		}
		o.Source = v
	}
}

// WithRegion selects where the stopwatch starts.
func WithRegion(r timing.Region) Option {
	return func(o *Options) {
		if _, err := timing.ParseRegion(string(r)); err != nil {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, err)
			return
		}
		o.Region = r
	}
}

// WithLenientCount parses the header like atoi.
func WithLenientCount() Option {
	return func(o *Options) { o.LenientCount = true }
}

// WithMaxLineBytes bounds a single input line.
func WithMaxLineBytes(n int) Option {
	return func(o *Options) { o.MaxLineBytes = n }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithClock replaces the stopwatch clock.
func WithClock(c timing.Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithInstrument replaces the OpenTelemetry instrument.
func WithInstrument(in *timing.Instrument) Option {
	return func(o *Options) {
		if in != nil {
			o.Instrument = in
		}
	}
}

// discardHandler drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
