package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex with the given ID. Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID if id is "".
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked creates the adjacency set for id; caller holds g.mu.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]struct{})
	}
}

// AddEdge connects from and to, creating either endpoint when missing.
// The edge is undirected; adding it twice leaves a single edge.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is "".
//   - ErrLoopNotAllowed if from == to.
//
// Complexity: O(1)
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}

	return nil
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// HasEdge reports whether from and to share an edge.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Neighbors returns the IDs adjacent to id in ascending order.
// Returns ErrVertexNotFound if id is not in g.
// Complexity: O(d log d), d = degree(id)
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	ids := make([]string, 0, len(adj))
	for n := range adj {
		ids = append(ids, n)
	}
	sort.Strings(ids)

	return ids, nil
}
