// Package day14 pours sand into a cave of rock paths ("Regolith Reservoir").
package day14

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2022/puzzle"
)

// Source is where every grain appears.
var Source = Point{X: 500, Y: 0}

// Point is a cave coordinate; Y grows downwards.
type Point struct {
	X, Y int
}

// Tile is the content of an occupied point.
type Tile uint8

const (
	Rock Tile = iota + 1
	Sand
)

// Bounds is the box around every rock, frozen once parsing ends.
type Bounds struct {
	MinX, MaxX, MinY, MaxY int
}

func (b *Bounds) extend(p Point) {
	b.MinX = min(b.MinX, p.X)
	b.MaxX = max(b.MaxX, p.X)
	b.MinY = min(b.MinY, p.Y)
	b.MaxY = max(b.MaxY, p.Y)
}

// Cave is a sparse occupancy map. Sand only ever gets added.
type Cave struct {
	tiles  map[Point]Tile
	bounds Bounds
	sand   int
}

// Parse rasterizes rock paths such as
//
//	498,4 -> 498,6 -> 496,6
//
// Consecutive corners must share a row or a column.
func Parse(r io.Reader) (*Cave, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	c := &Cave{
		tiles:  make(map[Point]Tile),
		bounds: Bounds{MinX: Source.X, MaxX: Source.X, MinY: Source.Y, MaxY: Source.Y},
	}
	rocks := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var prev *Point
		for _, field := range strings.Split(line, "->") {
			p, err := parsePoint(strings.TrimSpace(field))
			if err != nil {
				return nil, puzzle.Malformed(i+1, line, "%v", err)
			}
			if prev != nil {
				if prev.X != p.X && prev.Y != p.Y {
					return nil, puzzle.Malformed(i+1, line, "segment %v to %v is diagonal", *prev, p)
				}
				rocks += c.segment(*prev, p)
			} else {
				rocks += c.segment(p, p)
			}
			prev = &p
		}
	}
	if rocks == 0 {
		return nil, fmt.Errorf("%w: no rock", puzzle.ErrMalformedInput)
	}

	return c, nil
}

func parsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("expected x,y in %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, err
	}
	if y < 0 {
		return Point{}, fmt.Errorf("rock above the source at %q", s)
	}

	return Point{X: x, Y: y}, nil
}

// segment marks every point from a to b as rock and returns how many were new.
func (c *Cave) segment(a, b Point) int {
	dx, dy := sign(b.X-a.X), sign(b.Y-a.Y)
	added := 0
	for p := a; ; p = (Point{X: p.X + dx, Y: p.Y + dy}) {
		if _, ok := c.tiles[p]; !ok {
			c.tiles[p] = Rock
			added++
		}
		c.bounds.extend(p)
		if p == b {
			return added
		}
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Bounds returns the rock box including the source.
func (c *Cave) Bounds() Bounds { return c.bounds }

// Sand returns the grains at rest.
func (c *Cave) Sand() int { return c.sand }

// At returns the tile at p; ok is false for air.
func (c *Cave) At(p Point) (Tile, bool) {
	t, ok := c.tiles[p]
	return t, ok
}

// Clone returns an independent copy; simulations on it leave c untouched.
func (c *Cave) Clone() *Cave {
	tiles := make(map[Point]Tile, len(c.tiles))
	for p, t := range c.tiles {
		tiles[p] = t
	}

	return &Cave{tiles: tiles, bounds: c.bounds, sand: c.sand}
}

// String draws the frozen bounds: '#' rock, 'o' sand, '+' source, '.' air.
// Sand that spilled outside the rock box is not drawn.
func (c *Cave) String() string {
	var sb strings.Builder
	for y := c.bounds.MinY; y <= c.bounds.MaxY; y++ {
		for x := c.bounds.MinX; x <= c.bounds.MaxX; x++ {
			p := Point{X: x, Y: y}
			switch t, ok := c.tiles[p]; {
			case ok && t == Rock:
				sb.WriteByte('#')
			case ok && t == Sand:
				sb.WriteByte('o')
			case p == Source:
				sb.WriteByte('+')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
