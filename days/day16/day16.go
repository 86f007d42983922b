// Package day16 plans which valves to open in a tunnel network
// ("Proboscidea Volcanium").
//
// The network is a core.Graph of valves joined by one-minute tunnels;
// matrix.Distances supplies all-pairs hop counts. MaxPressure then searches
// the space of (open valves, walker positions, minutes left) for the
// schedule releasing the most pressure, alone in 30 minutes or with a
// helper in 26.
package day16

import (
	"fmt"
	"io"

	"github.com/katalvlaran/aoc2022/puzzle"
)

// Puzzle registers the day.
var Puzzle = puzzle.Definition{Day: 16, Title: "Proboscidea Volcanium", Load: Load}

// StartValve is where every walker begins.
const StartValve = "AA"

const (
	soloMinutes   = 30
	helperMinutes = 26
)

// Load parses the network once and shares it between both parts. The
// network must contain StartValve and at most 64 valves with positive flow.
func Load(r io.Reader) (puzzle.Solution, error) {
	n, err := Parse(r)
	if err != nil {
		return puzzle.Solution{}, err
	}
	if _, ok := n.Valve(StartValve); !ok {
		return puzzle.Solution{}, fmt.Errorf("%w: %w: %s", puzzle.ErrMalformedInput, ErrUnknownStart, StartValve)
	}
	if k := len(n.Useful()); k > maxUseful {
		return puzzle.Solution{}, fmt.Errorf("%w: %w: %d", puzzle.ErrMalformedInput, ErrTooManyValves, k)
	}

	return puzzle.Solution{
		PartOne: maxPressureAnswer(n, soloMinutes, 1),
		PartTwo: maxPressureAnswer(n, helperMinutes, 2),
	}, nil
}
