package day14

import (
	"io"
	"strconv"

	"github.com/katalvlaran/aoc2022/puzzle"
)

// Puzzle registers the day.
var Puzzle = puzzle.Definition{Day: 14, Title: "Regolith Reservoir", Load: Load}

// falls lists the moves a grain tries, in order: down, down-left, down-right.
var falls = [3]Point{{X: 0, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: 1}}

// Pour drops grains from Source until the cave is settled and returns how
// many came to rest during this call.
//
// Without a floor the run ends at the first grain that falls below the
// lowest rock. With a floor, an endless rock row two below the lowest rock
// holds everything and the run ends when a grain rests on Source.
func (c *Cave) Pour(floor bool) int {
	floorY := c.bounds.MaxY + 2
	free := func(p Point) bool {
		if floor && p.Y >= floorY {
			return false
		}
		_, taken := c.tiles[p]
		return !taken
	}

	rested := 0
	for {
		if !free(Source) {
			return rested
		}
		g, settled := c.drop(Source, free)
		if !settled {
			return rested
		}
		c.tiles[g] = Sand
		c.sand++
		rested++
		if g == Source {
			return rested
		}
	}
}

// drop moves one grain from p until it rests or passes below the rock box.
func (c *Cave) drop(p Point, free func(Point) bool) (Point, bool) {
	// with a floor, free stops every grain before it passes limit
	limit := c.bounds.MaxY + 1
	for {
		moved := false
		for _, d := range falls {
			next := Point{X: p.X + d.X, Y: p.Y + d.Y}
			if free(next) {
				p, moved = next, true
				break
			}
		}
		if !moved {
			return p, true
		}
		if p.Y > limit {
			return p, false
		}
	}
}

// Load parses the cave; each part pours into its own clone.
func Load(r io.Reader) (puzzle.Solution, error) {
	c, err := Parse(r)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Solution{
		PartOne: func() (string, error) { return strconv.Itoa(c.Clone().Pour(false)), nil },
		PartTwo: func() (string, error) { return strconv.Itoa(c.Clone().Pour(true)), nil },
	}, nil
}
