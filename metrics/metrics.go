// Package metrics collects per-run Prometheus series for batch runs and
// exports them in the node_exporter textfile format.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/shortest/sssp"
)

// ErrNoPath indicates WriteTextfile was called without a destination.
var ErrNoPath = errors.New("metrics: empty textfile path")

const namespace = "shortest"

// Collector owns a private registry so concurrent batches never collide on
// the default one.
type Collector struct {
	reg *prometheus.Registry

	duration  *prometheus.HistogramVec
	runs      *prometheus.CounterVec
	vertices  prometheus.Counter
	edges     prometheus.Counter
	reachable prometheus.Counter
	stalePops prometheus.Counter
}

// New registers the series on a fresh registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Collector{
		reg: reg,
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "compute",
			Name:      "duration_microseconds",
			Help:      "Timed region of one computation in microseconds",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 10),
		}, []string{"region"}),
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "compute",
			Name:      "runs_total",
			Help:      "Computations by outcome",
		}, []string{"status"}),
		vertices: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "graph",
			Name:      "vertices_total",
			Help:      "Vertices loaded across all runs",
		}),
		edges: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "graph",
			Name:      "edges_total",
			Help:      "Edges loaded across all runs",
		}),
		reachable: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "graph",
			Name:      "reachable_total",
			Help:      "Vertices reached from the source across all runs",
		}),
		stalePops: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "stale_pops_total",
			Help:      "Queue entries discarded because their vertex was already settled",
		}),
	}
}

// Observe records a finished run.
func (c *Collector) Observe(rep *sssp.Report) {
	c.runs.WithLabelValues("ok").Inc()
	c.duration.WithLabelValues(string(rep.Region)).Observe(float64(rep.Micros))
	c.vertices.Add(float64(rep.VertexCount))
	c.edges.Add(float64(rep.EdgeCount))
	c.reachable.Add(float64(rep.Reachable))
	c.stalePops.Add(float64(rep.Stats.StalePops))
}

// ObserveError counts a failed run.
func (c *Collector) ObserveError() {
	c.runs.WithLabelValues("error").Inc()
}

// Registry exposes the underlying registry for tests and custom exporters.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// WriteTextfile writes every series to path atomically.
func (c *Collector) WriteTextfile(path string) error {
	if path == "" {
		return ErrNoPath
	}
	if err := prometheus.WriteToTextfile(path, c.reg); err != nil {
		return fmt.Errorf("metrics: write textfile: %w", err)
	}

	return nil
}
