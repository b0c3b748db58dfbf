// Package path rebuilds source→target vertex sequences from a parent array.
//
// Reconstruction walks parent pointers from the target back to the vertex
// tagged IsSource and reverses the result. Meeting an Unvisited entry on the way
// means the target was never reached. The parent array is only read, so any
// number of reconstructions may run after the engine terminates.
package path

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortest/core"
)

// Unreachable is the rendering of a path to a vertex the source cannot reach.
const Unreachable = "unreachable"

// Sentinel errors for path reconstruction.
var (
	// ErrUnreachable indicates the chain hit an Unvisited vertex before the source.
	ErrUnreachable = errors.New("path: target unreachable from source")

	// ErrTargetOutOfRange indicates a target outside [1, len(parents)].
	ErrTargetOutOfRange = errors.New("path: target out of range")

	// ErrBrokenChain indicates a cycle or an out-of-range parent id.
	// A parent array produced by the engine never triggers it.
	ErrBrokenChain = errors.New("path: broken parent chain")
)

// Reconstruct returns the path from the source to target, both inclusive.
//
// Complexity: O(L) time and space, L = path length.
func Reconstruct(parents []core.Parent, target core.VertexID) (core.Path, error) {
	n := len(parents)
	if target < 1 || int(target) > n {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrTargetOutOfRange, target, n)
	}

	var rev core.Path
	cur := target
	// A simple path visits each vertex at most once.
	for steps := 0; steps <= n; steps++ {
		rev = append(rev, cur)
		p := parents[cur.Index()]
		switch p.Kind {
		case core.IsSource:
			reverse(rev)
			return rev, nil
		case core.Unvisited:
			return nil, ErrUnreachable
		}
		if p.Vertex < 1 || int(p.Vertex) > n {
			return nil, fmt.Errorf("%w: parent %d of %d", ErrBrokenChain, p.Vertex, cur)
		}
		cur = p.Vertex
	}

	return nil, fmt.Errorf("%w: cycle through %d", ErrBrokenChain, target)
}

// Render returns the path as "1 2 3", or Unreachable when no path exists.
// Out-of-range targets and broken chains also render as Unreachable.
func Render(parents []core.Parent, target core.VertexID) string {
	p, err := Reconstruct(parents, target)
	if err != nil {
		return Unreachable
	}

	return p.String()
}

func reverse(p core.Path) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
