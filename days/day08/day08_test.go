package day08_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/days/day08"
	"github.com/katalvlaran/aoc2022/gridgraph"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const sample = `30373
25512
65332
33549
35390
`

func parseSample(t *testing.T) *day08.Forest {
	t.Helper()
	f, err := day08.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	return f
}

func TestSample(t *testing.T) {
	f := parseSample(t)
	require.Equal(t, 21, f.CountVisible())

	best, idx := f.BestScenic()
	require.Equal(t, 8, best)
	require.Equal(t, f.Index(2, 3), idx)
	require.Equal(t, 4, f.Scenic(f.Index(2, 1)))

	require.True(t, f.Visible(f.Index(1, 1)))
	require.False(t, f.Visible(f.Index(2, 2)))
	require.False(t, f.Visible(f.Index(3, 1)))
}

func TestEdges(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for round := 0; round < 20; round++ {
		w, h := 1+rng.Intn(7), 1+rng.Intn(7)
		rows := make([][]int, h)
		for y := range rows {
			rows[y] = make([]int, w)
			for x := range rows[y] {
				rows[y][x] = rng.Intn(10)
			}
		}
		grid, err := gridgraph.NewGrid(rows)
		require.NoError(t, err)
		f := day08.NewForest(grid)
		for i := 0; i < f.Len(); i++ {
			if grid.IsEdge(i) {
				require.True(t, f.Visible(i), "round %d cell %d", round, i)
				require.Zero(t, f.Scenic(i), "round %d cell %d", round, i)
			}
		}
		requireMatchesBruteForce(t, grid, f)
	}
}

// requireMatchesBruteForce checks every scenic score against a direct walk.
func requireMatchesBruteForce(t *testing.T, grid *gridgraph.Grid, f *day08.Forest) {
	t.Helper()
	for i := 0; i < grid.Len(); i++ {
		score, visible := 1, false
		for _, d := range gridgraph.Directions {
			view, blocked := 0, false
			for j, ok := grid.Step(i, d); ok; j, ok = grid.Step(j, d) {
				view++
				if grid.At(j) >= grid.At(i) {
					blocked = true
					break
				}
			}
			score *= view
			visible = visible || !blocked
		}
		require.Equal(t, score, f.Scenic(i), "cell %d", i)
		require.Equal(t, visible, f.Visible(i), "cell %d", i)
	}
}

func TestParse_Malformed(t *testing.T) {
	for name, in := range map[string]string{
		"letter": "123\n4x6\n",
		"ragged": "123\n45\n",
		"empty":  "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := day08.Parse(strings.NewReader(in))
			require.ErrorIs(t, err, puzzle.ErrMalformedInput)
		})
	}
}

func TestSolve(t *testing.T) {
	ans, err := puzzle.Solve(context.Background(), day08.Puzzle, strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, puzzle.Answer{PartOne: "21", PartTwo: "8"}, ans)
}
