package core

import "fmt"

// ParentKind tags the state of one entry of the parent array.
type ParentKind uint8

const (
	// Unvisited marks a vertex never reached from the source. It is the zero value.
	Unvisited ParentKind = iota

	// IsSource marks the vertex the computation started from.
	IsSource

	// HasParent marks a reached vertex whose predecessor is Parent.Vertex.
	HasParent
)

// Legacy integer encodings of the parent array.
const (
	LegacySource    = -1
	LegacyUnvisited = -2
)

// Parent is the tagged predecessor state of a single vertex.
// The zero value is Unvisited.
type Parent struct {
	Kind   ParentKind
	Vertex VertexID // valid only when Kind == HasParent
}

// SourceParent returns the state of the source vertex.
func SourceParent() Parent { return Parent{Kind: IsSource} }

// ParentOf returns the state "u is the predecessor".
func ParentOf(u VertexID) Parent { return Parent{Kind: HasParent, Vertex: u} }

// Legacy returns the -1 / -2 / vertex-id encoding.
func (p Parent) Legacy() int {
	switch p.Kind {
	case IsSource:
		return LegacySource
	case HasParent:
		return int(p.Vertex)
	default:
		return LegacyUnvisited
	}
}

// String implements fmt.Stringer.
func (p Parent) String() string {
	switch p.Kind {
	case IsSource:
		return "source"
	case HasParent:
		return fmt.Sprintf("parent(%d)", p.Vertex)
	default:
		return "unvisited"
	}
}
