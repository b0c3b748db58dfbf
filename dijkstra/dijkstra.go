package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/shortest/core"
)

// Run computes minimum costs and parents from the configured source to every
// vertex of adj.
//
// Preconditions and validation (in order):
//  1. adj must be non-nil (ErrNilAdjacency).
//  2. N = 0 yields an empty Result and no error.
//  3. The source must be in [1, N] (ErrSourceOutOfRange).
//  4. No arc may have a negative weight (ErrNegativeWeight).
//
// Run either completes the whole relax loop or returns an error; it never
// returns partial arrays.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func Run(adj *core.Adjacency, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	n := adj.VertexCount()
	if n == 0 {
		return &Result{Source: cfg.Source, Cost: []int64{}, Parent: []core.Parent{}}, nil
	}
	if !adj.Contains(cfg.Source) {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrSourceOutOfRange, cfg.Source, n)
	}

	// 3) Pre-scan all arcs to fail fast on negative weights.
	for _, e := range adj.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Prepare per-run state; nothing outlives this call.
	r := &runner{
		adj:    adj,
		opts:   cfg,
		cost:   make([]int64, n),
		parent: make([]core.Parent, n),
		marked: make([]bool, n),
		pq:     make(entryPQ, 0, n),
	}

	r.init()
	r.process()

	return &Result{
		Source: cfg.Source,
		Cost:   r.cost,
		Parent: r.parent,
		Stats:  r.stats,
	}, nil
}

// runner holds the mutable state for a single Run.
type runner struct {
	adj    *core.Adjacency // read-only input
	opts   Options
	cost   []int64       // best known cost per vertex
	parent []core.Parent // predecessor state per vertex
	marked []bool        // true once cost is final
	pq     entryPQ       // lazy min-heap
	stats  Stats
}

// init sets every cost to infinity, tags the source and seeds the heap.
func (r *runner) init() {
	for i := range r.cost {
		r.cost[i] = core.Infinity
	}
	// parent is already all Unvisited (zero value); marked all false.

	s := r.opts.Source
	r.cost[s.Index()] = 0
	r.parent[s.Index()] = core.SourceParent()

	heap.Init(&r.pq)
	r.push(s, 0)
}

// process is the relax loop. It returns when the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(entry)
		r.stats.Pops++

		// Stale duplicate superseded by an earlier, cheaper pop.
		if r.marked[item.v.Index()] {
			r.stats.StalePops++
			continue
		}

		r.marked[item.v.Index()] = true
		r.opts.OnSettle(item.v, r.cost[item.v.Index()])
		r.relax(item.v)
	}
}

// relax tries to improve every neighbor of the freshly settled u.
func (r *runner) relax(u core.VertexID) {
	cu := r.cost[u.Index()]
	for _, arc := range r.adj.Arcs(u) {
		vi := arc.To.Index()
		if r.marked[vi] {
			continue
		}

		// Saturating sum: a candidate at Infinity is never an improvement.
		cand := core.SaturatingAdd(cu, arc.Weight)
		if cand >= r.cost[vi] {
			continue
		}

		r.cost[vi] = cand
		r.parent[vi] = core.ParentOf(u)
		r.stats.Relaxations++
		r.opts.OnRelax(u, arc.To, cand)
		r.push(arc.To, cand)
	}
}

func (r *runner) push(v core.VertexID, c int64) {
	heap.Push(&r.pq, entry{v: v, cost: c})
	r.stats.Pushes++
}

// entry is a (vertex, cost-at-insertion) pair. Several entries may exist for
// one vertex; only the first popped one is acted on.
type entry struct {
	v    core.VertexID
	cost int64
}

// entryPQ is a min-heap of entries ordered by cost only.
type entryPQ []entry

func (pq entryPQ) Len() int           { return len(pq) }
func (pq entryPQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }
func (pq entryPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entryPQ) Push(x any) { *pq = append(*pq, x.(entry)) }

func (pq *entryPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
