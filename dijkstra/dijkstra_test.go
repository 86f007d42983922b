// Package dijkstra_test contains unit tests for the Search implementation.
// These tests validate input checks, distances and predecessor chains,
// multi-source seeding, early termination at a target and MaxDistance.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/dijkstra"
)

// adjGraph is an explicit adjacency list satisfying dijkstra.Graph.
type adjGraph [][]dijkstra.Arc

func (g adjGraph) Order() int { return len(g) }

func (g adjGraph) AppendArcs(dst []dijkstra.Arc, u int) []dijkstra.Arc {
	return append(dst, g[u]...)
}

// undirected builds an adjGraph from {u, v, w} triples.
func undirected(n int, edges ...[3]int) adjGraph {
	g := make(adjGraph, n)
	for _, e := range edges {
		g[e[0]] = append(g[e[0]], dijkstra.Arc{To: e[1], Weight: int64(e[2])})
		g[e[1]] = append(g[e[1]], dijkstra.Arc{To: e[0], Weight: int64(e[2])})
	}
	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests
// ------------------------------------------------------------------------

func TestSearch_NilGraph(t *testing.T) {
	_, err := dijkstra.Search(nil, dijkstra.Source(0))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestSearch_NoSource(t *testing.T) {
	_, err := dijkstra.Search(undirected(2))
	require.ErrorIs(t, err, dijkstra.ErrNoSource)
}

func TestSearch_SourceOutOfRange(t *testing.T) {
	_, err := dijkstra.Search(undirected(2), dijkstra.Source(2))
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
	_, err = dijkstra.Search(undirected(2), dijkstra.Sources(0, -1))
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
}

func TestSearch_NegativeWeight(t *testing.T) {
	g := undirected(2, [3]int{0, 1, -3})
	_, err := dijkstra.Search(g, dijkstra.Source(0))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestWithMaxDistance_Negative(t *testing.T) {
	require.Panics(t, func() {
		_, _ = dijkstra.Search(undirected(1), dijkstra.Source(0), dijkstra.WithMaxDistance(-1))
	})
}

// ------------------------------------------------------------------------
// 2. Distances and paths
// ------------------------------------------------------------------------

func TestSearch_Triangle(t *testing.T) {
	// 0—1 (1), 1—2 (2), 0—2 (5)
	g := undirected(3, [3]int{0, 1, 1}, [3]int{1, 2, 2}, [3]int{0, 2, 5})
	res, err := dijkstra.Search(g, dijkstra.Source(0))
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 3}, res.Dist)
	require.Equal(t, []int{-1, 0, 1}, res.Prev)
	require.Equal(t, []int{0, 1, 2}, res.Path(2))
	require.Equal(t, -1, res.Target)

	hops, ok := res.Hops(2, nil)
	require.True(t, ok)
	require.Equal(t, 2, hops)
}

func TestSearch_Unreachable(t *testing.T) {
	g := undirected(3, [3]int{0, 1, 1})
	res, err := dijkstra.Search(g, dijkstra.Source(0))
	require.NoError(t, err)
	require.False(t, res.Reached(2))
	require.Equal(t, int64(dijkstra.Unreachable), res.Dist[2])
	require.Nil(t, res.Path(2))
	_, ok := res.Hops(2, nil)
	require.False(t, ok)
}

func TestSearch_TargetStopsEarly(t *testing.T) {
	// chain 0-1-2-3-4
	g := undirected(5, [3]int{0, 1, 1}, [3]int{1, 2, 1}, [3]int{2, 3, 1}, [3]int{3, 4, 1})
	res, err := dijkstra.Search(g, dijkstra.Source(0), dijkstra.WithTarget(func(v int) bool { return v == 2 }))
	require.NoError(t, err)
	require.Equal(t, 2, res.Target)
	require.Equal(t, int64(2), res.Dist[2])
	require.False(t, res.Reached(4), "search must stop before exploring past the target")
}

func TestSearch_TargetUnreachable(t *testing.T) {
	g := undirected(3, [3]int{0, 1, 1})
	_, err := dijkstra.Search(g, dijkstra.Source(0), dijkstra.WithTarget(func(v int) bool { return v == 2 }))
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestSearch_MultiSource(t *testing.T) {
	// 0-1-2-3-4, sources at both ends
	g := undirected(5, [3]int{0, 1, 1}, [3]int{1, 2, 1}, [3]int{2, 3, 1}, [3]int{3, 4, 1})
	res, err := dijkstra.Search(g, dijkstra.Sources(0, 4, 4))
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 2, 1, 0}, res.Dist)

	hops, ok := res.Hops(3, func(v int) bool { return v == 4 })
	require.True(t, ok)
	require.Equal(t, 1, hops)
	_, ok = res.Hops(3, func(v int) bool { return v == 0 })
	require.False(t, ok, "3 is reached from source 4, not 0")
}

func TestSearch_DirectedArcs(t *testing.T) {
	g := adjGraph{
		{{To: 1, Weight: 2}, {To: 2, Weight: 1}},
		{{To: 3, Weight: 3}},
		{{To: 1, Weight: 1}, {To: 3, Weight: 5}},
		{},
	}
	res, err := dijkstra.Search(g, dijkstra.Source(0))
	require.NoError(t, err)
	require.Equal(t, []int64{0, 2, 1, 5}, res.Dist)

	back, err := dijkstra.Search(g, dijkstra.Source(3))
	require.NoError(t, err)
	require.False(t, back.Reached(0))
}

func TestSearch_ZeroWeights(t *testing.T) {
	g := undirected(4, [3]int{0, 1, 0}, [3]int{1, 2, 0}, [3]int{2, 3, 1})
	res, err := dijkstra.Search(g, dijkstra.Source(0))
	require.NoError(t, err)
	require.Equal(t, []int64{0, 0, 0, 1}, res.Dist)
}

func TestSearch_MaxDistance(t *testing.T) {
	g := undirected(4, [3]int{0, 1, 1}, [3]int{1, 2, 1}, [3]int{2, 3, 1})
	res, err := dijkstra.Search(g, dijkstra.Source(0), dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	require.True(t, res.Reached(1))
	require.False(t, res.Reached(2))
	require.False(t, res.Reached(3))
}
