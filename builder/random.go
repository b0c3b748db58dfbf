// SPDX-License-Identifier: MIT
// Package: shortest/builder
//
// File: random.go
// Role: seeded random edge lists in the loader's text format.
//
// Canonical model:
//   - Each vertex u draws `degree` destinations uniformly from [1, n].
//   - Self-loops are redrawn unless WithLoops; parallel arcs are allowed.
//   - Weights are uniform in [minCost, maxCost].
//
// Determinism:
//   - Stable order: optional chain first, then u asc, then draw order.
//   - Same n, degree, options and seed ⇒ identical edge list.

package builder

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/shortest/core"
)

// Random returns a random directed multigraph on n vertices with the given
// out-degree per vertex.
//
// Complexity: O(n·degree) time and space.
func Random(n, degree int, opts ...Option) ([]core.Edge, error) {
	if n < 1 {
		return nil, fmt.Errorf("Random: n=%d: %w", n, ErrTooFewVertices)
	}
	if degree < 0 {
		return nil, fmt.Errorf("Random: degree=%d: %w", degree, ErrInvalidDegree)
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("Random: n=%d > %d: %w", n, MaxVertices, ErrTooLarge)
	}
	if degree > (MaxEdges-n)/n {
		return nil, fmt.Errorf("Random: n=%d degree=%d exceeds %d edges: %w", n, degree, MaxEdges, ErrTooLarge)
	}
	cfg := newConfig(opts...)

	edges := make([]core.Edge, 0, n*degree+n)
	if cfg.chain {
		for u := 1; u < n; u++ {
			edges = append(edges, core.Edge{From: core.VertexID(u), To: core.VertexID(u + 1), Weight: cfg.weight()})
		}
	}

	for u := 1; u <= n; u++ {
		for k := 0; k < degree; k++ {
			v := cfg.rng.Intn(n) + 1
			// With a single vertex a loop is the only choice.
			for v == u && !cfg.loops && n > 1 {
				v = cfg.rng.Intn(n) + 1
			}
			if v == u && !cfg.loops {
				continue
			}
			edges = append(edges, core.Edge{From: core.VertexID(u), To: core.VertexID(v), Weight: cfg.weight()})
		}
	}

	return edges, nil
}

func (c config) weight() int64 {
	span := c.maxCost - c.minCost + 1
	if span <= 1 {
		return c.minCost
	}

	return c.minCost + c.rng.Int63n(span)
}

// Adjacency loads edges into a frozen adjacency of n vertices.
func Adjacency(n int, edges []core.Edge) (*core.Adjacency, error) {
	adj, err := core.NewAdjacency(n)
	if err != nil {
		return nil, fmt.Errorf("Adjacency: %w", err)
	}
	for _, e := range edges {
		if err = adj.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("Adjacency: %w", err)
		}
	}
	adj.Freeze()

	return adj, nil
}

// Write emits n and the edges in the loader's text format.
func Write(w io.Writer, n int, edges []core.Edge) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, n); err != nil {
		return fmt.Errorf("Write: header: %w", err)
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("Write: edge %d→%d: %w", e.From, e.To, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: flush: %w", err)
	}

	return nil
}
