// Package core provides the data model shared by every stage of a shortest-path
// computation: vertex identifiers, parsed edges, the adjacency structure, the
// tagged parent state and the reconstructed path.
//
// Vertices are 1-based integers in [1, N], where N is the vertex count declared
// by the input. Every array indexed by vertex (costs, parents, marks) stores the
// entry for vertex v at index v-1.
//
// The Adjacency G = (V, E) is a multi-valued mapping from a source vertex to the
// list of its outgoing arcs:
//
//   - Parallel edges are preserved: two lines "1 2 5" and "1 2 3" give two arcs.
//   - Insertion order within one source is kept, but carries no meaning.
//   - Self-loops are stored as given; they never improve a cost.
//
// Lifecycle:
//
//  1. NewAdjacency(n) allocates an empty structure for n vertices.
//  2. AddEdge(...) is called once per input line (loader only).
//  3. Freeze() seals the structure; later AddEdge calls fail with ErrFrozen.
//  4. The engine reads Arcs(u) for each settled u; it never writes back.
//
// Parent state replaces the classic -1/-2 integer sentinels with an explicit tag:
//
//	Unvisited      – never reached from the source
//	IsSource       – the computation started here
//	HasParent(u)   – u is the predecessor on the current best path
//
// Thread safety:
//
//   - Adjacency is NOT safe for concurrent mutation.
//   - After Freeze() it may be read from any number of goroutines.
package core
