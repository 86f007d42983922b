package day11

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/aoc2022/pqueue"
	"github.com/katalvlaran/aoc2022/puzzle"
)

// Puzzle registers the day.
var Puzzle = puzzle.Definition{Day: 11, Title: "Monkey in the Middle", Load: Load}

// Relief is the divisor applied after each inspection in part one.
const Relief = 3

// Troop is the ordered set of monkeys. Simulations mutate it; use Clone to
// run more than one.
type Troop struct {
	Monkeys []Monkey
	modulus uint64
}

// Parse reads blank-line separated monkey blocks. Monkeys must be numbered
// 0..n-1 in order and throw only to each other.
func Parse(r io.Reader) (*Troop, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	t := &Troop{modulus: 1}
	for _, b := range puzzle.Blocks(lines) {
		m, err := parseMonkey(b.Lines, b.Line)
		if err != nil {
			return nil, err
		}
		if m.ID != len(t.Monkeys) {
			return nil, puzzle.Malformed(b.Line, b.Lines[0], "expected monkey %d", len(t.Monkeys))
		}
		t.Monkeys = append(t.Monkeys, m)
		t.modulus = lcm(t.modulus, m.Divisor)
	}
	if len(t.Monkeys) < 2 {
		return nil, fmt.Errorf("%w: need at least two monkeys, got %d", puzzle.ErrMalformedInput, len(t.Monkeys))
	}
	for _, m := range t.Monkeys {
		for _, to := range []int{m.IfTrue, m.IfFalse} {
			if to < 0 || to >= len(t.Monkeys) || to == m.ID {
				return nil, fmt.Errorf("%w: monkey %d throws to %d", puzzle.ErrMalformedInput, m.ID, to)
			}
		}
	}

	return t, nil
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b uint64) uint64 { return a / gcd(a, b) * b }

// Modulus returns the least common multiple of every divisibility test.
func (t *Troop) Modulus() uint64 { return t.modulus }

// Clone deep-copies the troop.
func (t *Troop) Clone() *Troop {
	c := &Troop{Monkeys: make([]Monkey, len(t.Monkeys)), modulus: t.modulus}
	for i, m := range t.Monkeys {
		m.Items = append([]uint64(nil), m.Items...)
		c.Monkeys[i] = m
	}

	return c
}

// Round lets every monkey, in order, inspect and throw all items it holds.
// relief divides each new worry level before the test. With relief 1 the
// level is reduced modulo Modulus instead; a floor division does not commute
// with that reduction, so the two are never combined.
func (t *Troop) Round(relief uint64) {
	for i := range t.Monkeys {
		m := &t.Monkeys[i]
		for _, w := range m.Items {
			w = m.Operation.Apply(w)
			if relief == 1 {
				w %= t.modulus
			} else {
				w /= relief
			}
			to := m.Target(w)
			t.Monkeys[to].Items = append(t.Monkeys[to].Items, w)
		}
		m.Inspected += len(m.Items)
		m.Items = m.Items[:0]
	}
}

// Simulate runs the given number of rounds.
func (t *Troop) Simulate(rounds int, relief uint64) {
	if relief == 0 {
		panic("day11: relief must be positive")
	}
	for r := 0; r < rounds; r++ {
		t.Round(relief)
	}
}

// MonkeyBusiness multiplies the two highest inspection counts.
func (t *Troop) MonkeyBusiness() int {
	top := pqueue.New(func(a, b int) bool { return a > b })
	for _, m := range t.Monkeys {
		top.Push(m.Inspected)
	}
	first, _ := top.Pop()
	second, _ := top.Pop()

	return first * second
}

func business(t *Troop, rounds int, relief uint64) func() (string, error) {
	return func() (string, error) {
		c := t.Clone()
		c.Simulate(rounds, relief)
		return strconv.Itoa(c.MonkeyBusiness()), nil
	}
}

// Load parses the troop; each part simulates its own clone.
func Load(r io.Reader) (puzzle.Solution, error) {
	t, err := Parse(r)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Solution{
		PartOne: business(t, 20, Relief),
		PartTwo: business(t, 10000, 1),
	}, nil
}
