package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortest/core"
	"github.com/katalvlaran/shortest/path"
)

// Sentinel errors returned by Run.
var (
	// ErrNilAdjacency indicates that a nil *core.Adjacency was passed to Run.
	ErrNilAdjacency = errors.New("dijkstra: adjacency is nil")

	// ErrSourceOutOfRange indicates that the source vertex is not in [1, N].
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// DefaultSource is the vertex every computation starts from unless overridden.
const DefaultSource core.VertexID = 1

// Options configures a single Run.
type Options struct {
	Source   core.VertexID                        // starting vertex
	OnSettle func(v core.VertexID, cost int64)    // cost of v is final
	OnRelax  func(u, v core.VertexID, cost int64) // cost[v] improved via u
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// DefaultOptions returns source 1 and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Source:   DefaultSource,
		OnSettle: func(core.VertexID, int64) {},
		OnRelax:  func(core.VertexID, core.VertexID, int64) {},
	}
}

// Source sets the starting vertex.
func Source(v core.VertexID) Option {
	return func(o *Options) { o.Source = v }
}

// WithOnSettle registers a callback fired when a vertex is marked.
func WithOnSettle(fn func(v core.VertexID, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnRelax registers a callback fired on every strict cost improvement.
func WithOnRelax(fn func(u, v core.VertexID, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// Stats counts the work done by one Run.
type Stats struct {
	Pops        int // entries removed from the heap
	StalePops   int // pops discarded because the vertex was already marked
	Pushes      int // entries inserted, the source included
	Relaxations int // strict improvements
}

// Result holds the outcome of one Run. Slices are indexed by vertex-1.
type Result struct {
	Source core.VertexID
	Cost   []int64       // core.Infinity when unreachable
	Parent []core.Parent // core.Unvisited when unreachable
	Stats  Stats
}

// VertexCount returns N.
func (r *Result) VertexCount() int { return len(r.Cost) }

// CostOf returns the final cost of v and whether v is reachable.
// Out-of-range vertices report (core.Infinity, false).
func (r *Result) CostOf(v core.VertexID) (int64, bool) {
	if v < 1 || int(v) > len(r.Cost) {
		return core.Infinity, false
	}
	c := r.Cost[v.Index()]

	return c, c != core.Infinity
}

// Reachable reports whether v was reached from the source.
func (r *Result) Reachable(v core.VertexID) bool {
	_, ok := r.CostOf(v)
	return ok
}

// PathTo reconstructs the source → v path.
func (r *Result) PathTo(v core.VertexID) (core.Path, error) {
	p, err := path.Reconstruct(r.Parent, v)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: path to %d: %w", v, err)
	}

	return p, nil
}
