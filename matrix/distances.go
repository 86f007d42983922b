// Package matrix provides an all-pairs distance cache over a core.Graph.
//
// Purpose:
//   - Precompute hop distances between every pair of named vertices once, so
//     search code can query travel cost in O(1).
//
// Contract:
//   - Keys are unordered pairs: At(a,b) == At(b,a); At(a,a) == 0.
//   - The closure is built by iterative relaxation: every sweep extends each
//     known path by one edge; sweeps stop at a fixed point and never exceed |V|.
//   - A missing pair means the vertices are disconnected.
package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2022/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to NewDistances.
var ErrNilGraph = errors.New("matrix: graph is nil")

// pair is an unordered vertex pair stored with a <= b.
type pair struct{ a, b int }

func makePair(a, b int) pair {
	if b < a {
		a, b = b, a
	}

	return pair{a, b}
}

// Distances is an immutable, symmetric shortest-hop cache.
type Distances struct {
	ids   []string       // sorted vertex IDs; position is the internal handle
	index map[string]int // vertex ID → handle
	dist  map[pair]int   // unordered pair → hop count
	// Sweeps records how many relaxation sweeps ran before the fixed point.
	Sweeps int
}

// NewDistances computes hop distances between all vertex pairs of g.
//
// Steps:
//  1. Seed dist(v,v)=0 and dist(u,w)=1 for each edge.
//  2. Sweep: for each vertex u, for each neighbour w, for each known pair
//     (w,x): relax dist(u,x) with dist(w,x)+1.
//  3. Repeat until a sweep changes nothing or |V| sweeps have run.
//
// Complexity: O(|V| · E · |V|) worst case; graphs here are tiny.
func NewDistances(g *core.Graph) (*Distances, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ids := g.Vertices()
	d := &Distances{
		ids:   ids,
		index: make(map[string]int, len(ids)),
		dist:  make(map[pair]int, len(ids)*len(ids)/2+len(ids)),
	}
	for i, id := range ids {
		d.index[id] = i
	}

	// 1) Seed diagonal and direct edges; resolve adjacency to handles once.
	adj := make([][]int, len(ids))
	for i, id := range ids {
		d.dist[pair{i, i}] = 0
		nb, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("matrix: neighbours of %q: %w", id, err)
		}
		for _, n := range nb {
			j := d.index[n]
			adj[i] = append(adj[i], j)
			d.dist[makePair(i, j)] = 1
		}
	}

	// 2-3) Relax until fixed point, bounded by |V| sweeps.
	for d.Sweeps < len(ids) {
		d.Sweeps++
		if !d.sweep(adj) {
			break
		}
	}

	return d, nil
}

// sweep performs one relaxation pass and reports whether anything improved.
func (d *Distances) sweep(adj [][]int) bool {
	changed := false
	n := len(d.ids)
	for u := 0; u < n; u++ {
		for _, w := range adj[u] {
			for x := 0; x < n; x++ {
				if x == u {
					continue
				}
				wx, ok := d.dist[makePair(w, x)]
				if !ok {
					continue
				}
				key := makePair(u, x)
				if cur, ok := d.dist[key]; !ok || wx+1 < cur {
					d.dist[key] = wx + 1
					changed = true
				}
			}
		}
	}

	return changed
}

// At returns the hop distance between a and b. ok is false when either vertex
// is unknown or the two are disconnected.
func (d *Distances) At(a, b string) (dist int, ok bool) {
	i, ok := d.index[a]
	if !ok {
		return 0, false
	}
	j, ok := d.index[b]
	if !ok {
		return 0, false
	}
	dist, ok = d.dist[makePair(i, j)]

	return dist, ok
}

// Vertices returns the vertex IDs known to d in ascending order.
func (d *Distances) Vertices() []string {
	out := make([]string, len(d.ids))
	copy(out, d.ids)

	return out
}
