// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a graph. It supports:
//
//   - Construction from [][]int or from text lines via a per-byte decoder
//   - Row-major index arithmetic (Index, Coordinate)
//   - Bounds-checked four-connectivity with no wrap-around at row edges
//   - Directional steps and lane starts for edge-to-centre sweeps
package gridgraph

import (
	"bufio"
	"fmt"
	"io"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]int, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y+1, len(row), w)
		}
		cells = append(cells, row...)
	}

	return &Grid{Width: w, Height: h, Cells: cells}, nil
}

// Parse reads one grid row per non-empty line of r and maps every byte through
// decode. Decoder errors are wrapped with ErrBadCell and the cell position.
// Trailing carriage returns are ignored.
func Parse(r io.Reader, decode func(x, y int, b byte) (int, error)) (*Grid, error) {
	sc := bufio.NewScanner(r)
	var rows [][]int
	for sc.Scan() {
		line := sc.Bytes()
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		if len(line) == 0 {
			continue
		}
		y := len(rows)
		row := make([]int, len(line))
		for x, b := range line {
			v, err := decode(x, y, b)
			if err != nil {
				return nil, fmt.Errorf("%w at line %d column %d (%q): %v", ErrBadCell, y+1, x+1, b, err)
			}
			row[x] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read: %w", err)
	}

	return NewGrid(rows)
}

// Len returns the number of cells, W×H.
func (g *Grid) Len() int { return len(g.Cells) }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// At returns the value stored at idx.
func (g *Grid) At(idx int) int {
	return g.Cells[idx]
}

// Step returns the index one cell away from idx in direction d.
// ok is false when that cell is off the grid; indices never wrap across rows.
// Complexity: O(1).
func (g *Grid) Step(idx int, d Direction) (next int, ok bool) {
	x, y := g.Coordinate(idx)
	switch d {
	case North:
		y--
	case East:
		x++
	case South:
		y++
	case West:
		x--
	default:
		return 0, false
	}
	if !g.InBounds(x, y) {
		return 0, false
	}

	return g.Index(x, y), true
}

// Neighbors appends to buf the in-bounds orthogonal neighbours of idx
// (north, east, south, west order) and returns the extended slice.
// Off-grid neighbours are dropped.
func (g *Grid) Neighbors(buf []int, idx int) []int {
	for _, d := range Directions {
		if n, ok := g.Step(idx, d); ok {
			buf = append(buf, n)
		}
	}

	return buf
}

// LaneStart returns the first index of a sweep travelling in direction d along
// lane, where lane is a row number for East/West and a column for North/South.
// A sweep East starts at the left edge, North at the bottom edge, and so on.
// ok is false when lane is out of range.
func (g *Grid) LaneStart(d Direction, lane int) (idx int, ok bool) {
	switch d {
	case East:
		if lane < 0 || lane >= g.Height {
			return 0, false
		}
		return g.Index(0, lane), true
	case West:
		if lane < 0 || lane >= g.Height {
			return 0, false
		}
		return g.Index(g.Width-1, lane), true
	case South:
		if lane < 0 || lane >= g.Width {
			return 0, false
		}
		return g.Index(lane, 0), true
	case North:
		if lane < 0 || lane >= g.Width {
			return 0, false
		}
		return g.Index(lane, g.Height-1), true
	}

	return 0, false
}

// Lanes returns how many sweep lanes exist for direction d.
func (g *Grid) Lanes(d Direction) int {
	if d == East || d == West {
		return g.Height
	}

	return g.Width
}

// IsEdge reports whether idx lies on the outer border.
func (g *Grid) IsEdge(idx int) bool {
	x, y := g.Coordinate(idx)

	return x == 0 || y == 0 || x == g.Width-1 || y == g.Height-1
}
