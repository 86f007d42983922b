// Package day15 reasons about sensor exclusion zones ("Beacon Exclusion
// Zone").
//
// Each sensor rules out every point within the Manhattan distance of its
// closest beacon. A row is covered by at most one interval per sensor, so
// both answers work on merged intervals instead of individual points.
package day15

import (
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2022/puzzle"
)

// Puzzle registers the day with the full-size row and search limit.
var Puzzle = puzzle.Definition{Day: 15, Title: "Beacon Exclusion Zone", Load: Loader(DefaultOptions())}

// Point is a grid position.
type Point struct {
	X, Y int
}

// Sensor pairs a sensor with its closest beacon.
type Sensor struct {
	At     Point
	Beacon Point
	Radius int
}

// Options selects the row inspected by part one and the square searched by
// part two.
type Options struct {
	Row   int
	Limit int
}

// DefaultOptions returns the puzzle sizes.
func DefaultOptions() Options {
	return Options{Row: 2_000_000, Limit: 4_000_000}
}

// frequencyScale multiplies x in the tuning frequency.
const frequencyScale = 4_000_000

var sensorLine = regexp.MustCompile(`^Sensor at x=(-?\d+), y=(-?\d+): closest beacon is at x=(-?\d+), y=(-?\d+)$`)

// Parse reads one sensor per line.
func Parse(r io.Reader) ([]Sensor, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	var out []Sensor
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := sensorLine.FindStringSubmatch(line)
		if m == nil {
			return nil, puzzle.Malformed(i+1, line, "expected \"Sensor at x=N, y=N: closest beacon is at x=N, y=N\"")
		}
		var v [4]int
		for j := range v {
			if v[j], err = strconv.Atoi(m[j+1]); err != nil {
				return nil, puzzle.Malformed(i+1, line, "%v", err)
			}
		}
		s := Sensor{At: Point{v[0], v[1]}, Beacon: Point{v[2], v[3]}}
		s.Radius = manhattan(s.At, s.Beacon)
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no sensors", puzzle.ErrMalformedInput)
	}

	return out, nil
}

func manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// span is a closed interval [lo, hi].
type span struct {
	lo, hi int
}

// coverage returns the merged, sorted intervals of row y that lie within some
// sensor's radius.
func coverage(sensors []Sensor, y int, buf []span) []span {
	buf = buf[:0]
	for _, s := range sensors {
		reach := s.Radius - abs(s.At.Y-y)
		if reach < 0 {
			continue
		}
		buf = append(buf, span{s.At.X - reach, s.At.X + reach})
	}
	slices.SortFunc(buf, func(a, b span) int { return a.lo - b.lo })

	merged := buf[:0]
	for _, sp := range buf {
		if n := len(merged); n > 0 && sp.lo <= merged[n-1].hi+1 {
			merged[n-1].hi = max(merged[n-1].hi, sp.hi)
			continue
		}
		merged = append(merged, sp)
	}

	return merged
}

// Excluded counts the positions on row y where no beacon can be. Known
// beacons on the row are not counted.
func Excluded(sensors []Sensor, y int) int {
	n := 0
	for _, sp := range coverage(sensors, y, nil) {
		n += sp.hi - sp.lo + 1
	}
	beacons := make(map[Point]struct{})
	for _, s := range sensors {
		if s.Beacon.Y == y {
			beacons[s.Beacon] = struct{}{}
		}
	}

	return n - len(beacons)
}

// Distress finds the only point with 0 <= x, y <= limit that no sensor
// covers. Rows are scanned top to bottom; within a row the merged coverage
// either spans [0, limit] or leaves the gap.
func Distress(sensors []Sensor, limit int) (Point, error) {
	var buf []span
	for y := 0; y <= limit; y++ {
		buf = coverage(sensors, y, buf)
		x := 0
		for _, sp := range buf {
			if sp.lo > x {
				break
			}
			x = max(x, sp.hi+1)
		}
		if x <= limit {
			return Point{x, y}, nil
		}
	}

	return Point{}, fmt.Errorf("%w: every point up to %d is covered", puzzle.ErrNoSolution, limit)
}

// TuningFrequency is x*4000000 + y.
func TuningFrequency(p Point) int {
	return p.X*frequencyScale + p.Y
}

// Loader returns a puzzle.Loader using the given sizes.
func Loader(opts Options) puzzle.Loader {
	return func(r io.Reader) (puzzle.Solution, error) {
		sensors, err := Parse(r)
		if err != nil {
			return puzzle.Solution{}, err
		}

		return puzzle.Solution{
			PartOne: func() (string, error) { return strconv.Itoa(Excluded(sensors, opts.Row)), nil },
			PartTwo: func() (string, error) {
				p, err := Distress(sensors, opts.Limit)
				if err != nil {
					return "", err
				}
				return strconv.Itoa(TuningFrequency(p)), nil
			},
		}, nil
	}
}
