// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Arc, Path and the cost sentinel.

package core

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors for adjacency construction.
var (
	// ErrVertexOutOfRange indicates an endpoint outside [1, N].
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNegativeVertexCount indicates NewAdjacency was asked for n < 0.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrFrozen indicates an AddEdge after Freeze.
	ErrFrozen = errors.New("core: adjacency is frozen")

	// ErrTooManyVertices indicates NewAdjacency was asked for n > MaxVertexCount.
	ErrTooManyVertices = errors.New("core: too many vertices")
)

// MaxVertexCount is the largest n NewAdjacency accepts.
const MaxVertexCount = math.MaxInt32

// Infinity is the cost of a vertex that has not been reached.
// Finite costs are always strictly below it.
const Infinity int64 = math.MaxInt64

// VertexID is a 1-based vertex identifier.
type VertexID int

// Index returns the zero-based slot of v in per-vertex arrays.
func (v VertexID) Index() int { return int(v) - 1 }

// Edge is one parsed input line: From → To with a non-negative Weight.
type Edge struct {
	From   VertexID
	To     VertexID
	Weight int64
}

// Arc is one adjacency entry: the destination and weight of an outgoing edge.
type Arc struct {
	To     VertexID
	Weight int64
}

// Path is an ordered vertex sequence from the source to a target, both inclusive.
type Path []VertexID

// String renders p as space-separated vertex ids, e.g. "1 2 3".
func (p Path) String() string {
	var b strings.Builder
	for i, v := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}

	return b.String()
}

// Ints returns p as a plain []int (handy for serialization).
func (p Path) Ints() []int {
	out := make([]int, len(p))
	for i, v := range p {
		out[i] = int(v)
	}

	return out
}

// SaturatingAdd returns a+b, clamped to Infinity.
// Both operands must be non-negative; adding anything to Infinity stays Infinity.
func SaturatingAdd(a, b int64) int64 {
	if a >= Infinity-b {
		return Infinity
	}

	return a + b
}
