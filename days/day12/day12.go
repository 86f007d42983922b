// Package day12 finds the fewest steps up a height map ("Hill Climbing
// Algorithm").
//
// The map is a gridgraph.Grid of heights 0..25 ('a'..'z'); 'S' is the start
// at height 0 and 'E' the end at height 25. A step from A to B is admissible
// iff height(B) <= height(A)+1. Both queries run dijkstra.Search with unit arc
// weights and reconstruct the step count by backtracking predecessors from E.
package day12

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2022/dijkstra"
	"github.com/katalvlaran/aoc2022/gridgraph"
	"github.com/katalvlaran/aoc2022/puzzle"
)

// Puzzle registers the day.
var Puzzle = puzzle.Definition{Day: 12, Title: "Hill Climbing Algorithm", Load: Load}

const maxHeight = 'z' - 'a'

// HeightMap is the parsed input. It is read-only after Parse.
type HeightMap struct {
	grid  *gridgraph.Grid
	Start int
	End   int
}

// Parse reads the height map. Exactly one S and one E are required.
func Parse(r io.Reader) (*HeightMap, error) {
	var (
		start, end []int // x, y of the markers seen so far
		dup        error
	)
	grid, err := gridgraph.Parse(r, func(x, y int, b byte) (int, error) {
		switch {
		case b == 'S':
			if start != nil {
				dup = fmt.Errorf("second start at %d,%d", x, y)
			}
			start = []int{x, y}
			return 0, nil
		case b == 'E':
			if end != nil {
				dup = fmt.Errorf("second end at %d,%d", x, y)
			}
			end = []int{x, y}
			return maxHeight, nil
		case b >= 'a' && b <= 'z':
			return int(b - 'a'), nil
		}
		return 0, errors.New("expected a-z, S or E")
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}
	if dup != nil {
		return nil, fmt.Errorf("%w: %v", puzzle.ErrMalformedInput, dup)
	}
	if start == nil || end == nil {
		return nil, fmt.Errorf("%w: map needs both S and E", puzzle.ErrMalformedInput)
	}

	return &HeightMap{
		grid:  grid,
		Start: grid.Index(start[0], start[1]),
		End:   grid.Index(end[0], end[1]),
	}, nil
}

// NewHeightMap wraps an existing grid of heights 0..25. start and end must be
// valid cell indices.
func NewHeightMap(grid *gridgraph.Grid, start, end int) (*HeightMap, error) {
	if grid == nil || grid.Len() == 0 {
		return nil, gridgraph.ErrEmptyGrid
	}
	if start < 0 || start >= grid.Len() || end < 0 || end >= grid.Len() {
		return nil, fmt.Errorf("%w: start %d or end %d outside %d cells", puzzle.ErrMalformedInput, start, end, grid.Len())
	}
	for i, h := range grid.Cells {
		if h < 0 || h > maxHeight {
			return nil, fmt.Errorf("%w: cell %d has height %d", puzzle.ErrMalformedInput, i, h)
		}
	}

	return &HeightMap{grid: grid, Start: start, End: end}, nil
}

// Width returns the number of columns.
func (m *HeightMap) Width() int { return m.grid.Width }

// Height returns the elevation of cell idx.
func (m *HeightMap) Height(idx int) int { return m.grid.At(idx) }

// Order implements dijkstra.Graph.
func (m *HeightMap) Order() int { return m.grid.Len() }

// AppendArcs implements dijkstra.Graph: unit-weight steps to in-bounds
// neighbours at most one unit higher.
func (m *HeightMap) AppendArcs(dst []dijkstra.Arc, u int) []dijkstra.Arc {
	h := m.grid.At(u)
	for _, d := range gridgraph.Directions {
		v, ok := m.grid.Step(u, d)
		if !ok || m.grid.At(v) > h+1 {
			continue
		}
		dst = append(dst, dijkstra.Arc{To: v, Weight: 1})
	}

	return dst
}

// ShortestPath returns the fewest steps from Start to End.
func (m *HeightMap) ShortestPath() (int, error) {
	route, err := m.Route()
	if err != nil {
		return 0, err
	}

	return len(route) - 1, nil
}

// Route returns one shortest sequence of cells from Start to End inclusive.
func (m *HeightMap) Route() ([]int, error) {
	return m.climb([]int{m.Start}, func(v int) bool { return v == m.Start })
}

// BestStart returns the fewest steps to End from any height-0 cell and the
// cell it starts from. Every height-0 cell is seeded at distance 0, which is
// the same as joining them with zero-cost edges.
func (m *HeightMap) BestStart() (steps, from int, err error) {
	var lows []int
	for i, h := range m.grid.Cells {
		if h == 0 {
			lows = append(lows, i)
		}
	}
	if len(lows) == 0 {
		return 0, -1, fmt.Errorf("%w: no cell at height 0", puzzle.ErrNoSolution)
	}
	route, err := m.climb(lows, func(v int) bool { return m.grid.At(v) == 0 })
	if err != nil {
		return 0, -1, err
	}

	return len(route) - 1, route[0], nil
}

// climb searches from sources until End is popped, then backtracks the
// predecessor chain from End to the first cell satisfying isStart.
func (m *HeightMap) climb(sources []int, isStart func(int) bool) ([]int, error) {
	res, err := dijkstra.Search(m,
		dijkstra.Sources(sources...),
		dijkstra.WithTarget(func(v int) bool { return v == m.End }),
	)
	if errors.Is(err, dijkstra.ErrNoPath) {
		return nil, fmt.Errorf("%w: end is unreachable", puzzle.ErrNoSolution)
	}
	if err != nil {
		return nil, err
	}
	path := res.Path(m.End)
	for i := len(path) - 1; i >= 0; i-- {
		if isStart(path[i]) {
			return path[i:], nil
		}
	}

	return nil, fmt.Errorf("%w: predecessor chain from end has no start", puzzle.ErrNoSolution)
}

// Render draws the map with cells on path in upper case.
func (m *HeightMap) Render(path []int) string {
	on := make(map[int]bool, len(path))
	for _, p := range path {
		on[p] = true
	}
	var sb strings.Builder
	for i, h := range m.grid.Cells {
		c := byte('a' + h)
		if on[i] {
			c -= 'a' - 'A'
		}
		sb.WriteByte(c)
		if (i+1)%m.grid.Width == 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// Load parses the input and returns both queries as a puzzle.Solution.
func Load(r io.Reader) (puzzle.Solution, error) {
	m, err := Parse(r)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Solution{
		PartOne: func() (string, error) {
			n, err := m.ShortestPath()
			if err != nil {
				return "", err
			}
			return strconv.Itoa(n), nil
		},
		PartTwo: func() (string, error) {
			n, _, err := m.BestStart()
			if err != nil {
				return "", err
			}
			return strconv.Itoa(n), nil
		},
	}, nil
}
