// Package dijkstra implements Dijkstra's shortest-path algorithm on implicit
// graphs with non-negative arc weights.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) under the lazy decrease-key strategy.
//
// Notes on implementation choices:
//
//   - Vertices are integer handles so dist/prev/visited are flat slices.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when popped.
//   - The heap order is an explicit comparison (ascending distance), not an
//     accident of field layout.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/aoc2022/pqueue"
)

// Search runs Dijkstra from the configured sources over g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. at least one source (ErrNoSource).
//  3. every source in range (ErrSourceOutOfRange).
//
// When a target predicate is set the search stops at the first popped target
// and Result.Target holds it; if none is reachable ErrNoPath is returned.
// Negative arcs are detected during relaxation (ErrNegativeWeight).
func Search(g Graph, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(cfg.Sources) == 0 {
		return nil, ErrNoSource
	}
	n := g.Order()
	for _, s := range cfg.Sources {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, s, n)
		}
	}

	// 3) Prepare state and run
	r := &runner{
		g:       g,
		options: cfg,
		res:     newResult(n),
		visited: make([]bool, n),
		pq:      pqueue.New(func(a, b nodeItem) bool { return a.dist < b.dist }),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	// 4) A target predicate that never fired means no path.
	if cfg.Target != nil && r.res.Target < 0 {
		return nil, ErrNoPath
	}

	return r.res, nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g       Graph
	options Options
	res     *Result
	visited []bool                  // finalized vertices
	pq      *pqueue.Queue[nodeItem] // min-heap by dist
	arcs    []Arc                   // reused arc buffer
}

// init seeds every source at distance 0.
func (r *runner) init() {
	for _, s := range r.options.Sources {
		if r.res.Dist[s] == 0 {
			continue // duplicate source
		}
		r.res.Dist[s] = 0
		r.pq.Push(nodeItem{id: s, dist: 0})
	}
}

// process pops vertices in ascending distance order until the heap drains,
// MaxDistance is exceeded or a target is popped.
func (r *runner) process() error {
	for {
		item, ok := r.pq.Pop()
		if !ok {
			return nil
		}
		u := item.id

		// Skip stale heap entry.
		if r.visited[u] || item.dist > r.res.Dist[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			return nil
		}
		r.visited[u] = true

		if r.options.Target != nil && r.options.Target(u) {
			r.res.Target = u
			return nil
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}
}

// relax examines every arc leaving u and pushes strictly improved neighbours.
// Assumes r.res.Dist[u] is finalized before calling relax(u).
func (r *runner) relax(u int) error {
	r.arcs = r.g.AppendArcs(r.arcs[:0], u)
	du := r.res.Dist[u]
	for _, a := range r.arcs {
		if a.Weight < 0 {
			return fmt.Errorf("%w: arc %d→%d weight=%d", ErrNegativeWeight, u, a.To, a.Weight)
		}
		if r.visited[a.To] {
			continue
		}
		nd := du + a.Weight
		if nd > r.options.MaxDistance {
			continue
		}
		// Strict improvement only; equal distances keep the first predecessor.
		if nd >= r.res.Dist[a.To] {
			continue
		}
		r.res.Dist[a.To] = nd
		r.res.Prev[a.To] = u
		r.pq.Push(nodeItem{id: a.To, dist: nd})
	}

	return nil
}

// nodeItem is a heap entry: vertex id and its distance when pushed.
type nodeItem struct {
	id   int
	dist int64
}
