// Package day06 finds start markers in a datastream ("Tuning Trouble").
package day06

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/aoc2022/puzzle"
)

// Puzzle registers the day.
var Puzzle = puzzle.Definition{Day: 6, Title: "Tuning Trouble", Load: Load}

// Marker lengths.
const (
	PacketMarker  = 4
	MessageMarker = 14
)

// StartMarker returns how many bytes of stream must be read before the last
// size bytes are pairwise distinct.
//
// The window keeps a count per byte value and the number of values seen more
// than once, so each step costs O(1).
func StartMarker(stream []byte, size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: window size %d", puzzle.ErrMalformedInput, size)
	}
	var (
		counts [256]int
		dups   int
	)
	for i, b := range stream {
		counts[b]++
		if counts[b] == 2 {
			dups++
		}
		if i >= size {
			old := stream[i-size]
			counts[old]--
			if counts[old] == 1 {
				dups--
			}
		}
		if i >= size-1 && dups == 0 {
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("%w: no %d distinct bytes in a row", puzzle.ErrNoSolution, size)
}

// Load reads the stream; surrounding whitespace is ignored.
func Load(r io.Reader) (puzzle.Solution, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("read input: %w", err)
	}
	stream := bytes.TrimSpace(raw)
	if len(stream) == 0 {
		return puzzle.Solution{}, fmt.Errorf("%w: empty datastream", puzzle.ErrMalformedInput)
	}
	part := func(size int) func() (string, error) {
		return func() (string, error) {
			n, err := StartMarker(stream, size)
			if err != nil {
				return "", err
			}
			return strconv.Itoa(n), nil
		}
	}

	return puzzle.Solution{PartOne: part(PacketMarker), PartTwo: part(MessageMarker)}, nil
}
