// Package puzzle defines the contract every daily solver implements, the
// registry the command uses to find them, and the runner that evaluates the
// two parts of a day.
//
// Errors:
//
//	ErrMalformedInput - a line or token does not match the day's grammar.
//	ErrNoSolution     - a search or scan exhausted its space without an answer.
//	ErrUnknownDay     - no solver is registered for the requested day.
package puzzle

import (
	"errors"
	"io"
)

// Sentinel errors shared by all days.
var (
	// ErrMalformedInput is wrapped with the offending line by Malformed.
	ErrMalformedInput = errors.New("puzzle: malformed input")

	// ErrNoSolution indicates the input is well-formed but has no answer.
	ErrNoSolution = errors.New("puzzle: no solution found")

	// ErrUnknownDay indicates a day without a registered solver.
	ErrUnknownDay = errors.New("puzzle: unknown day")

	// ErrBadDay indicates a day argument that is not 1..25.
	ErrBadDay = errors.New("puzzle: day must be between 1 and 25")
)

// Answer holds the two printed results of a day.
type Answer struct {
	PartOne string
	PartTwo string
}

// Solution is a parsed input ready to be solved. Each part is a pure
// function over the parsed model; the two parts may run concurrently, so a
// part that needs to mutate shared state must work on its own clone.
type Solution struct {
	PartOne func() (string, error)
	PartTwo func() (string, error)
}

// Loader parses a whole input and returns its Solution.
type Loader func(r io.Reader) (Solution, error)

// Definition describes one day.
type Definition struct {
	Day   int
	Title string
	Load  Loader
}
