// Package sssp runs one complete shortest-path computation over an edge-list
// stream: load, solve, reconstruct every path, and time the critical section.
//
// Compute is a pure function of its input stream; the only observable side
// effects are log records and OpenTelemetry signals.
package sssp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/shortest/core"
	"github.com/katalvlaran/shortest/dijkstra"
	"github.com/katalvlaran/shortest/loader"
	"github.com/katalvlaran/shortest/path"
	"github.com/katalvlaran/shortest/timing"
)

// Entry is the outcome for one vertex.
type Entry struct {
	Vertex    core.VertexID
	Cost      int64 // core.Infinity when unreachable
	Reachable bool
	Path      core.Path // nil when unreachable
}

// Report is the full result of one computation.
type Report struct {
	RunID       uuid.UUID
	Input       string // file name, if known
	Source      core.VertexID
	VertexCount int
	EdgeCount   int
	Reachable   int
	Entries     []Entry
	Elapsed     time.Duration
	Micros      int64
	Region      timing.Region
	Stats       dijkstra.Stats
	Adjacency   *core.Adjacency
}

// Compute loads the graph from r, runs the engine and reconstructs all paths.
//
// Timing: with RegionLoadAndSolve the stopwatch starts once the vertex-count
// line is consumed, right before the edge lines are read; with RegionSolveOnly
// it starts after loading. Either way it stops as soon as the relax loop ends.
// Path reconstruction is outside the timed region.
func Compute(ctx context.Context, r io.Reader, opts ...Option) (*Report, error) {
	const op = "sssp.Compute"

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	runID := uuid.New()
	log := cfg.Logger.With(slog.String("op", op), slog.String("run_id", runID.String()))

	ctx, span := cfg.Instrument.Begin(ctx, attribute.String("sssp.run_id", runID.String()))
	outcome := timing.Outcome{Region: cfg.Region}
	defer func() { cfg.Instrument.Finish(ctx, span, outcome) }()

	sw := timing.NewStopwatch(cfg.Clock)

	// 1) Load.
	loadOpts := make([]loader.Option, 0, 3)
	if cfg.Region == timing.RegionLoadAndSolve {
		loadOpts = append(loadOpts, loader.WithOnEdgesBegin(sw.Start))
	}
	if cfg.LenientCount {
		loadOpts = append(loadOpts, loader.WithLenientCount())
	}
	if cfg.MaxLineBytes > 0 {
		loadOpts = append(loadOpts, loader.WithMaxLineBytes(cfg.MaxLineBytes))
	}

	adj, err := loader.Load(r, loadOpts...)
	if err != nil {
		outcome.Err = err
		log.Error("failed to load graph", slog.String("err", err.Error()))
		return nil, fmt.Errorf("%s: load: %w", op, err)
	}
	log.Debug("graph loaded",
		slog.Int("vertices", adj.VertexCount()),
		slog.Int("edges", adj.EdgeCount()),
	)

	// 2) Solve.
	if cfg.Region == timing.RegionSolveOnly {
		sw.Start()
	}
	res, err := dijkstra.Run(adj, dijkstra.Source(cfg.Source))
	elapsed, stopErr := sw.Stop()
	if err != nil {
		outcome.Err = err
		log.Error("shortest-path run failed", slog.String("err", err.Error()))
		return nil, fmt.Errorf("%s: run: %w", op, err)
	}
	if stopErr != nil {
		outcome.Err = stopErr
		return nil, fmt.Errorf("%s: %w", op, stopErr)
	}

	// 3) Reconstruct.
	rep := &Report{
		RunID:       runID,
		Source:      res.Source,
		VertexCount: adj.VertexCount(),
		EdgeCount:   adj.EdgeCount(),
		Entries:     make([]Entry, adj.VertexCount()),
		Elapsed:     elapsed,
		Micros:      sw.Micros(),
		Region:      cfg.Region,
		Stats:       res.Stats,
		Adjacency:   adj,
	}
	for i := range rep.Entries {
		v := core.VertexID(i + 1)
		ent := Entry{Vertex: v, Cost: res.Cost[i]}
		p, err := path.Reconstruct(res.Parent, v)
		switch {
		case err == nil:
			ent.Reachable = true
			ent.Path = p
			rep.Reachable++
		case errors.Is(err, path.ErrUnreachable):
		default:
			outcome.Err = err
			return nil, fmt.Errorf("%s: reconstruct %d: %w", op, v, err)
		}
		rep.Entries[i] = ent
	}

	outcome.Micros = rep.Micros
	outcome.Vertices = rep.VertexCount
	outcome.Edges = rep.EdgeCount
	outcome.Reachable = rep.Reachable

	log.Info("computation finished",
		slog.Int("vertices", rep.VertexCount),
		slog.Int("edges", rep.EdgeCount),
		slog.Int("reachable", rep.Reachable),
		slog.Int64("micros", rep.Micros),
		slog.String("region", string(rep.Region)),
	)

	return rep, nil
}

// ComputeFile opens name and runs Compute over it.
func ComputeFile(ctx context.Context, name string, opts ...Option) (*Report, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("sssp: open input: %w", err)
	}
	defer f.Close()

	rep, err := Compute(ctx, f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	rep.Input = name

	return rep, nil
}
