// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: multi-valued source → []Arc mapping built once by the loader.
// Policy:
//   - Endpoints are validated against [1, N] on insertion.
//   - Parallel edges and self-loops are stored verbatim.
//   - After Freeze the structure is read-only.

package core

import "fmt"

// Adjacency maps each source vertex to its outgoing arcs.
type Adjacency struct {
	n      int     // declared vertex count
	arcs   [][]Arc // arcs[u-1] = outgoing arcs of u, in insertion order
	edges  int     // total number of arcs
	frozen bool
}

// NewAdjacency allocates an empty adjacency for n vertices.
//
// Complexity: O(n) time and space.
func NewAdjacency(n int) (*Adjacency, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertexCount, n)
	}
	if n > MaxVertexCount {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyVertices, n, MaxVertexCount)
	}

	return &Adjacency{
		n:    n,
		arcs: make([][]Arc, n),
	}, nil
}

// AddEdge appends the arc from → to with weight w.
// Both endpoints must lie in [1, N]. Weight is stored as given; sign checks are
// the caller's concern (loader and engine both reject negatives).
//
// Complexity: O(1) amortized.
func (a *Adjacency) AddEdge(from, to VertexID, w int64) error {
	if a.frozen {
		return ErrFrozen
	}
	if !a.Contains(from) {
		return fmt.Errorf("%w: from=%d, n=%d", ErrVertexOutOfRange, from, a.n)
	}
	if !a.Contains(to) {
		return fmt.Errorf("%w: to=%d, n=%d", ErrVertexOutOfRange, to, a.n)
	}

	i := from.Index()
	a.arcs[i] = append(a.arcs[i], Arc{To: to, Weight: w})
	a.edges++

	return nil
}

// Freeze seals the adjacency against further insertion.
func (a *Adjacency) Freeze() { a.frozen = true }

// Frozen reports whether Freeze has been called.
func (a *Adjacency) Frozen() bool { return a.frozen }

// Contains reports whether v is a valid vertex id for this adjacency.
func (a *Adjacency) Contains(v VertexID) bool { return v >= 1 && int(v) <= a.n }

// VertexCount returns N.
func (a *Adjacency) VertexCount() int { return a.n }

// EdgeCount returns the number of stored arcs, parallel edges included.
func (a *Adjacency) EdgeCount() int { return a.edges }

// Arcs returns the outgoing arcs of u in insertion order.
// The returned slice aliases internal storage and must not be modified.
// An out-of-range u yields nil.
func (a *Adjacency) Arcs(u VertexID) []Arc {
	if !a.Contains(u) {
		return nil
	}

	return a.arcs[u.Index()]
}

// Edges returns every stored edge ordered by source vertex, then insertion order.
//
// Complexity: O(V + E).
func (a *Adjacency) Edges() []Edge {
	out := make([]Edge, 0, a.edges)
	for i, list := range a.arcs {
		from := VertexID(i + 1)
		for _, arc := range list {
			out = append(out, Edge{From: from, To: arc.To, Weight: arc.Weight})
		}
	}

	return out
}
