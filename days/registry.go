// Package days lists every implemented solver.
package days

import (
	"github.com/katalvlaran/aoc2022/days/day06"
	"github.com/katalvlaran/aoc2022/days/day08"
	"github.com/katalvlaran/aoc2022/days/day11"
	"github.com/katalvlaran/aoc2022/days/day12"
	"github.com/katalvlaran/aoc2022/days/day13"
	"github.com/katalvlaran/aoc2022/days/day14"
	"github.com/katalvlaran/aoc2022/days/day15"
	"github.com/katalvlaran/aoc2022/days/day16"
	"github.com/katalvlaran/aoc2022/puzzle"
)

// All returns the definitions of every solved day.
func All() []puzzle.Definition {
	return []puzzle.Definition{
		day06.Puzzle,
		day08.Puzzle,
		day11.Puzzle,
		day12.Puzzle,
		day13.Puzzle,
		day14.Puzzle,
		day15.Puzzle,
		day16.Puzzle,
	}
}

// Registry returns a fresh registry holding All.
func Registry() *puzzle.Registry {
	return puzzle.NewRegistry(All()...)
}
