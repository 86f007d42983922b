package dijkstra

// Result is the outcome of a Search.
//
//   - Dist[v]: minimal distance from the nearest source, Unreachable if never reached.
//   - Prev[v]: predecessor of v on one shortest path, -1 for sources and unreached vertices.
//   - Target:  the target vertex that stopped the search, -1 when no target predicate
//     was configured.
//
// When the search stopped early at a target, Dist holds tentative values for
// vertices that were pushed but not finalized.
type Result struct {
	Dist   []int64
	Prev   []int
	Target int
}

func newResult(n int) *Result {
	res := &Result{
		Dist:   make([]int64, n),
		Prev:   make([]int, n),
		Target: -1,
	}
	for i := range res.Dist {
		res.Dist[i] = Unreachable
		res.Prev[i] = -1
	}

	return res
}

// Reached reports whether v received a finite distance.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Unreachable
}

// Path returns the vertices from the originating source to v inclusive,
// reconstructed by walking Prev backwards. Returns nil if v was not reached.
// Complexity: O(path length).
func (r *Result) Path(v int) []int {
	if !r.Reached(v) {
		return nil
	}
	var path []int
	for at := v; at >= 0; at = r.Prev[at] {
		path = append(path, at)
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Hops counts the edges on the predecessor chain from v back to the first
// vertex satisfying stop (or to a root when stop is nil). ok is false when v
// was not reached or the chain ends before stop is satisfied.
func (r *Result) Hops(v int, stop func(u int) bool) (hops int, ok bool) {
	if !r.Reached(v) {
		return 0, false
	}
	at := v
	for {
		if stop != nil && stop(at) {
			return hops, true
		}
		prev := r.Prev[at]
		if prev < 0 {
			return hops, stop == nil
		}
		at = prev
		hops++
	}
}
