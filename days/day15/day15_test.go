package day15_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/days/day15"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const sample = `Sensor at x=2, y=18: closest beacon is at x=-2, y=15
Sensor at x=9, y=16: closest beacon is at x=10, y=16
Sensor at x=13, y=2: closest beacon is at x=15, y=3
Sensor at x=12, y=14: closest beacon is at x=10, y=16
Sensor at x=10, y=20: closest beacon is at x=10, y=16
Sensor at x=14, y=17: closest beacon is at x=10, y=16
Sensor at x=8, y=7: closest beacon is at x=2, y=10
Sensor at x=2, y=0: closest beacon is at x=2, y=10
Sensor at x=0, y=11: closest beacon is at x=2, y=10
Sensor at x=20, y=14: closest beacon is at x=25, y=17
Sensor at x=17, y=20: closest beacon is at x=21, y=22
Sensor at x=16, y=7: closest beacon is at x=15, y=3
Sensor at x=14, y=3: closest beacon is at x=15, y=3
Sensor at x=20, y=1: closest beacon is at x=15, y=3
`

var sampleOptions = day15.Options{Row: 10, Limit: 20}

func parseSample(t *testing.T) []day15.Sensor {
	t.Helper()
	sensors, err := day15.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, sensors, 14)
	return sensors
}

func TestParse(t *testing.T) {
	s := parseSample(t)[0]
	require.Equal(t, day15.Point{X: 2, Y: 18}, s.At)
	require.Equal(t, day15.Point{X: -2, Y: 15}, s.Beacon)
	require.Equal(t, 7, s.Radius)
}

func TestExcluded(t *testing.T) {
	sensors := parseSample(t)
	require.Equal(t, 26, day15.Excluded(sensors, 10))
	require.Zero(t, day15.Excluded(sensors, -100))
}

func TestDistress(t *testing.T) {
	sensors := parseSample(t)
	p, err := day15.Distress(sensors, 20)
	require.NoError(t, err)
	require.Equal(t, day15.Point{X: 14, Y: 11}, p)
	require.Equal(t, 56000011, day15.TuningFrequency(p))
}

func TestDistress_Covered(t *testing.T) {
	sensors, err := day15.Parse(strings.NewReader("Sensor at x=5, y=5: closest beacon is at x=5, y=15\n"))
	require.NoError(t, err)
	_, err = day15.Distress(sensors, 10)
	require.ErrorIs(t, err, puzzle.ErrNoSolution)
}

func TestParse_Malformed(t *testing.T) {
	for name, in := range map[string]string{
		"garbage": "Sensor at 2,18\n",
		"no y":    "Sensor at x=2: closest beacon is at x=-2, y=15\n",
		"empty":   "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := day15.Parse(strings.NewReader(in))
			require.ErrorIs(t, err, puzzle.ErrMalformedInput)
		})
	}
}

func TestSolve(t *testing.T) {
	def := day15.Puzzle
	def.Load = day15.Loader(sampleOptions)
	ans, err := puzzle.Solve(context.Background(), def, strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, puzzle.Answer{PartOne: "26", PartTwo: "56000011"}, ans)
}
