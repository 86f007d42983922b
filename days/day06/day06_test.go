package day06_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/days/day06"
	"github.com/katalvlaran/aoc2022/puzzle"
)

func TestStartMarker(t *testing.T) {
	cases := []struct {
		in              string
		packet, message int
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 7, 19},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}
	for _, tc := range cases {
		t.Run(tc.in[:8], func(t *testing.T) {
			n, err := day06.StartMarker([]byte(tc.in), day06.PacketMarker)
			require.NoError(t, err)
			require.Equal(t, tc.packet, n)

			n, err = day06.StartMarker([]byte(tc.in), day06.MessageMarker)
			require.NoError(t, err)
			require.Equal(t, tc.message, n)
		})
	}
}

func TestStartMarker_Edges(t *testing.T) {
	n, err := day06.StartMarker([]byte("a"), 1)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	n, err = day06.StartMarker([]byte("abcd"), 4)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	_, err = day06.StartMarker([]byte("abcabc"), 4)
	require.ErrorIs(t, err, puzzle.ErrNoSolution)

	_, err = day06.StartMarker([]byte("abc"), 4)
	require.ErrorIs(t, err, puzzle.ErrNoSolution)

	_, err = day06.StartMarker([]byte("abc"), 0)
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestSolve(t *testing.T) {
	ans, err := puzzle.Solve(context.Background(), day06.Puzzle, strings.NewReader("mjqjpqmgbljsphdztnvjfqwrcgsmlb\n"))
	require.NoError(t, err)
	require.Equal(t, puzzle.Answer{PartOne: "7", PartTwo: "19"}, ans)

	_, err = puzzle.Solve(context.Background(), day06.Puzzle, strings.NewReader(" \n"))
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
