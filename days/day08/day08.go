// Package day08 scores trees on a height grid ("Treetop Tree House").
//
// Both answers come from four directional sweeps over a gridgraph.Grid, one
// lane at a time. A sweep keeps the running maximum (visibility from the
// edge it starts at) and a stack of trees in non-increasing height (viewing
// distance back towards that edge). Each cell is pushed and popped at most
// once per direction.
package day08

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/aoc2022/gridgraph"
	"github.com/katalvlaran/aoc2022/puzzle"
)

// Puzzle registers the day.
var Puzzle = puzzle.Definition{Day: 8, Title: "Treetop Tree House", Load: Load}

// Forest holds tree heights and the per-tree results of the sweeps.
type Forest struct {
	grid    *gridgraph.Grid
	visible []bool
	scenic  []int
}

// Parse reads rows of digits 0-9.
func Parse(r io.Reader) (*Forest, error) {
	grid, err := gridgraph.Parse(r, func(_, _ int, b byte) (int, error) {
		if b < '0' || b > '9' {
			return 0, errors.New("expected digit")
		}
		return int(b - '0'), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}

	return NewForest(grid), nil
}

// NewForest runs the sweeps over grid.
func NewForest(grid *gridgraph.Grid) *Forest {
	f := &Forest{
		grid:    grid,
		visible: make([]bool, grid.Len()),
		scenic:  make([]int, grid.Len()),
	}
	for i := range f.scenic {
		f.scenic[i] = 1
	}
	var stack []seen
	for _, d := range gridgraph.Directions {
		for lane := 0; lane < grid.Lanes(d); lane++ {
			start, _ := grid.LaneStart(d, lane)
			stack = f.sweep(d, start, stack[:0])
		}
	}

	return f
}

// seen is a stack entry: a tree's height and its position along the lane.
type seen struct {
	height, pos int
}

// sweep walks one lane in direction d. Looking back from each tree, the
// view stops at the nearest earlier tree at least as tall, which is the top
// of the stack once shorter trees are popped.
func (f *Forest) sweep(d gridgraph.Direction, idx int, stack []seen) []seen {
	tallest := -1
	for pos, ok := 0, true; ok; idx, ok = f.grid.Step(idx, d) {
		h := f.grid.At(idx)
		if h > tallest {
			f.visible[idx] = true
			tallest = h
		}
		for len(stack) > 0 && stack[len(stack)-1].height < h {
			stack = stack[:len(stack)-1]
		}
		view := pos
		if len(stack) > 0 {
			view = pos - stack[len(stack)-1].pos
		}
		f.scenic[idx] *= view
		stack = append(stack, seen{height: h, pos: pos})
		pos++
	}

	return stack
}

// Visible reports whether the tree at idx can be seen from outside the grid.
func (f *Forest) Visible(idx int) bool { return f.visible[idx] }

// Scenic returns the product of the four viewing distances from idx.
func (f *Forest) Scenic(idx int) int { return f.scenic[idx] }

// Index maps column x, row y to a tree index.
func (f *Forest) Index(x, y int) int { return f.grid.Index(x, y) }

// Len returns the number of trees.
func (f *Forest) Len() int { return f.grid.Len() }

// CountVisible returns how many trees are visible from outside.
func (f *Forest) CountVisible() int {
	n := 0
	for _, v := range f.visible {
		if v {
			n++
		}
	}

	return n
}

// BestScenic returns the highest scenic score and its tree.
func (f *Forest) BestScenic() (score, idx int) {
	for i, s := range f.scenic {
		if s > score {
			score, idx = s, i
		}
	}

	return score, idx
}

// Load runs the sweeps once; the parts only read the results.
func Load(r io.Reader) (puzzle.Solution, error) {
	f, err := Parse(r)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Solution{
		PartOne: func() (string, error) { return strconv.Itoa(f.CountVisible()), nil },
		PartTwo: func() (string, error) {
			best, _ := f.BestScenic()
			return strconv.Itoa(best), nil
		},
	}, nil
}
