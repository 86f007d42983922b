package day12_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/days/day12"
	"github.com/katalvlaran/aoc2022/gridgraph"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi`

func parseSample(t *testing.T) *day12.HeightMap {
	t.Helper()
	m, err := day12.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	return m
}

func TestParse(t *testing.T) {
	m := parseSample(t)
	require.Equal(t, 8, m.Width())
	require.Equal(t, 0, m.Start)
	require.Equal(t, 2*8+5, m.End)
	require.Equal(t, 0, m.Height(m.Start))
	require.Equal(t, 25, m.Height(m.End))
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"bad char":  "Sab\na1E\n",
		"no start":  "aab\naaE\n",
		"no end":    "Sab\naaa\n",
		"two start": "SaS\naaE\n",
		"ragged":    "Sab\naE\n",
		"empty":     "",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := day12.Parse(strings.NewReader(in))
			require.ErrorIs(t, err, puzzle.ErrMalformedInput)
		})
	}
}

func TestSample(t *testing.T) {
	m := parseSample(t)

	steps, err := m.ShortestPath()
	require.NoError(t, err)
	require.Equal(t, 31, steps)

	best, from, err := m.BestStart()
	require.NoError(t, err)
	require.Equal(t, 29, best)
	require.Equal(t, 0, m.Height(from))
}

func TestRoute_Admissible(t *testing.T) {
	m := parseSample(t)
	route, err := m.Route()
	require.NoError(t, err)
	require.Len(t, route, 32)
	require.Equal(t, m.Start, route[0])
	require.Equal(t, m.End, route[len(route)-1])
	for i := 1; i < len(route); i++ {
		require.LessOrEqual(t, m.Height(route[i]), m.Height(route[i-1])+1, "step %d", i)
	}

	drawn := m.Render(route)
	require.Equal(t, 32, countUpper(drawn))
	require.Equal(t, 5, strings.Count(drawn, "\n"))
	require.True(t, strings.HasPrefix(drawn, "A"))
}

func countUpper(s string) int {
	n := 0
	for _, c := range s {
		if c >= 'A' && c <= 'Z' {
			n++
		}
	}
	return n
}

func TestUnreachable(t *testing.T) {
	// the only way to E is a two-unit climb
	m, err := day12.Parse(strings.NewReader("SacE\n"))
	require.NoError(t, err)
	_, err = m.ShortestPath()
	require.ErrorIs(t, err, puzzle.ErrNoSolution)
	_, _, err = m.BestStart()
	require.ErrorIs(t, err, puzzle.ErrNoSolution)
}

// TestFlatGrid_Manhattan checks that on an equal-height grid the step count
// equals the Manhattan distance between start and end.
func TestFlatGrid_Manhattan(t *testing.T) {
	const w, h = 7, 5
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
	}
	grid, err := gridgraph.NewGrid(rows)
	require.NoError(t, err)

	pairs := [][4]int{{0, 0, 6, 4}, {3, 2, 3, 2}, {6, 0, 0, 4}, {2, 4, 5, 1}}
	for _, p := range pairs {
		m, err := day12.NewHeightMap(grid, grid.Index(p[0], p[1]), grid.Index(p[2], p[3]))
		require.NoError(t, err)
		steps, err := m.ShortestPath()
		require.NoError(t, err)
		require.Equal(t, abs(p[0]-p[2])+abs(p[1]-p[3]), steps, "%v", p)
	}
}

func TestBestStart_NoLowCell(t *testing.T) {
	grid, err := gridgraph.NewGrid([][]int{{1, 2, 3}})
	require.NoError(t, err)
	m, err := day12.NewHeightMap(grid, 0, 2)
	require.NoError(t, err)

	_, _, err = m.BestStart()
	require.ErrorIs(t, err, puzzle.ErrNoSolution)

	steps, err := m.ShortestPath()
	require.NoError(t, err)
	require.Equal(t, 2, steps)
}

func TestNewHeightMap_Invalid(t *testing.T) {
	grid, err := gridgraph.NewGrid([][]int{{0, 30}})
	require.NoError(t, err)
	_, err = day12.NewHeightMap(grid, 0, 1)
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)

	grid, err = gridgraph.NewGrid([][]int{{0, 1}})
	require.NoError(t, err)
	_, err = day12.NewHeightMap(grid, 0, 2)
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestSolve(t *testing.T) {
	ans, err := puzzle.Solve(context.Background(), day12.Puzzle, strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, puzzle.Answer{PartOne: "31", PartTwo: "29"}, ans)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
