// Package dijkstra computes single-source minimum costs over a core.Adjacency
// with non-negative integer weights.
//
// Overview:
//
//   - The engine settles vertices in order of increasing cost using a binary
//     min-heap of (vertex, cost-at-insertion) entries.
//   - Decrease-key is lazy: an improved cost pushes a fresh entry and the stale
//     one is discarded when popped, by checking the marked set.
//   - For every vertex the result holds the final cost (core.Infinity when
//     unreachable) and a tagged parent (core.Parent) for path reconstruction.
//
// State machine:
//
//	Init      cost[*] = ∞, cost[s] = 0, parent[s] = IsSource, push (s, 0)
//	Relax     pop min; skip if marked; mark; for each arc u→v (w):
//	            if cost[u]+w < cost[v]: cost[v], parent[v] = cost[u]+w, u; push (v, cost[v])
//	Terminal  heap empty ⇒ reachable vertices marked, the rest keep ∞ / Unvisited
//
// Invariants:
//
//   - cost[source] = 0 and parent[source] = IsSource.
//   - A marked vertex is never unmarked and its cost never changes again.
//   - Parent chains are acyclic and end at the source.
//   - Sums saturate at core.Infinity, so adding to the sentinel never wraps.
//
// Options:
//
//   - Source(v):         starting vertex (default 1).
//   - WithOnSettle(fn):  called once per vertex when its cost is final.
//   - WithOnRelax(fn):   called on every strict improvement.
//
// Errors (sentinel):
//
//   - ErrNilAdjacency      adj == nil.
//   - ErrSourceOutOfRange  source not in [1, N] (N > 0).
//   - ErrNegativeWeight    a negative arc weight was found by the O(E) pre-scan.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E), the heap holding up to one entry per improvement.
//
// The adjacency is never written. Run allocates all state per call, so
// concurrent runs over the same frozen adjacency are safe.
package dijkstra
