package day13

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2022/puzzle"
)

// Puzzle registers the day.
var Puzzle = puzzle.Definition{Day: 13, Title: "Distress Signal", Load: Load}

// Dividers are the two extra packets added before sorting.
var Dividers = [2]string{"[[2]]", "[[6]]"}

// Pair is one block of the input.
type Pair struct {
	Left, Right Value
}

// ParsePairs reads blocks of two packets separated by blank lines.
func ParsePairs(r io.Reader) ([]Pair, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	var (
		pairs   []Pair
		pending []Value
	)
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		v, err := Parse(line)
		if err != nil {
			return nil, puzzle.Malformed(i+1, line, "%v", err)
		}
		pending = append(pending, v)
		if len(pending) == 2 {
			pairs = append(pairs, Pair{Left: pending[0], Right: pending[1]})
			pending = pending[:0]
		}
	}
	if len(pending) != 0 {
		return nil, fmt.Errorf("%w: last packet has no partner", puzzle.ErrMalformedInput)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: no packets", puzzle.ErrMalformedInput)
	}

	return pairs, nil
}

// OrderedIndexSum sums the 1-based indices of pairs already in order.
func OrderedIndexSum(pairs []Pair) int {
	sum := 0
	for i, p := range pairs {
		if Compare(p.Left, p.Right) <= 0 {
			sum += i + 1
		}
	}

	return sum
}

// sortedOrder stably sorts every packet of pairs plus the dividers and
// returns the packets in order together with, for each divider, its position
// in that order. Dividers follow input packets that compare equal to them.
func sortedOrder(pairs []Pair) ([]Value, [len(Dividers)]int) {
	all := make([]Value, 0, 2*len(pairs)+len(Dividers))
	for _, p := range pairs {
		all = append(all, p.Left, p.Right)
	}
	first := len(all)
	for _, d := range Dividers {
		v, err := Parse(d)
		if err != nil {
			panic(err)
		}
		all = append(all, v)
	}
	order := make([]int, len(all))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return Compare(all[a], all[b]) })

	sorted := make([]Value, len(all))
	var at [len(Dividers)]int
	for pos, i := range order {
		sorted[pos] = all[i]
		if i >= first {
			at[i-first] = pos
		}
	}

	return sorted, at
}

// Sorted returns every packet of pairs plus the dividers, in order.
func Sorted(pairs []Pair) []Value {
	sorted, _ := sortedOrder(pairs)
	return sorted
}

// DecoderKey multiplies the 1-based positions of the dividers in the sorted
// packet list.
func DecoderKey(pairs []Pair) int {
	_, at := sortedOrder(pairs)
	key := 1
	for _, pos := range at {
		key *= pos + 1
	}

	return key
}

// Load parses the pairs; both parts read them without mutation.
func Load(r io.Reader) (puzzle.Solution, error) {
	pairs, err := ParsePairs(r)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Solution{
		PartOne: func() (string, error) { return strconv.Itoa(OrderedIndexSum(pairs)), nil },
		PartTwo: func() (string, error) { return strconv.Itoa(DecoderKey(pairs)), nil },
	}, nil
}
