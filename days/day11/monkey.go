// Package day11 simulates monkeys passing items around ("Monkey in the
// Middle").
//
// Without relief, worry levels are reduced modulo the least common multiple
// of every divisibility test after each inspection. Divisibility by any one
// test is unchanged by that reduction, so the throws are the same as with
// unbounded integers.
package day11

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2022/puzzle"
)

// Operator is the arithmetic of an Operation.
type Operator byte

const (
	// Add is "old + x".
	Add Operator = '+'
	// Multiply is "old * x".
	Multiply Operator = '*'
)

// Operation computes a new worry level from the old one.
type Operation struct {
	Op Operator
	// Self is true for "old op old"; Operand is unused then.
	Self    bool
	Operand uint64
}

// Apply returns old op operand.
func (o Operation) Apply(old uint64) uint64 {
	v := o.Operand
	if o.Self {
		v = old
	}
	if o.Op == Add {
		return old + v
	}

	return old * v
}

// Monkey is one queue of items with its inspection rule.
type Monkey struct {
	ID        int
	Items     []uint64
	Operation Operation
	Divisor   uint64
	IfTrue    int
	IfFalse   int
	Inspected int
}

// Target returns the monkey that receives an item of the given worry.
func (m *Monkey) Target(worry uint64) int {
	if worry%m.Divisor == 0 {
		return m.IfTrue
	}

	return m.IfFalse
}

// parseMonkey reads one block of six lines starting at input line first.
func parseMonkey(block []string, first int) (Monkey, error) {
	if len(block) != 6 {
		return Monkey{}, puzzle.Malformed(first, block[0], "a monkey has 6 lines, got %d", len(block))
	}
	var (
		m   Monkey
		err error
	)
	fields := [6]struct {
		prefix string
		parse  func(rest string) error
	}{
		{"Monkey ", func(s string) error {
			m.ID, err = strconv.Atoi(strings.TrimSuffix(s, ":"))
			return err
		}},
		{"Starting items:", func(s string) error {
			for _, f := range strings.Split(s, ",") {
				if f = strings.TrimSpace(f); f == "" {
					continue
				}
				v, err := strconv.ParseUint(f, 10, 64)
				if err != nil {
					return err
				}
				m.Items = append(m.Items, v)
			}
			return nil
		}},
		{"Operation: new = old ", func(s string) error {
			m.Operation, err = parseOperation(s)
			return err
		}},
		{"Test: divisible by ", func(s string) error {
			m.Divisor, err = strconv.ParseUint(s, 10, 64)
			if err == nil && m.Divisor == 0 {
				err = fmt.Errorf("divisor must be positive")
			}
			return err
		}},
		{"If true: throw to monkey ", func(s string) error {
			m.IfTrue, err = strconv.Atoi(s)
			return err
		}},
		{"If false: throw to monkey ", func(s string) error {
			m.IfFalse, err = strconv.Atoi(s)
			return err
		}},
	}
	for i, f := range fields {
		line := strings.TrimSpace(block[i])
		rest, ok := strings.CutPrefix(line, f.prefix)
		if !ok {
			return Monkey{}, puzzle.Malformed(first+i, block[i], "expected %q", f.prefix)
		}
		if err := f.parse(strings.TrimSpace(rest)); err != nil {
			return Monkey{}, puzzle.Malformed(first+i, block[i], "%v", err)
		}
	}

	return m, nil
}

func parseOperation(s string) (Operation, error) {
	op, arg, ok := strings.Cut(s, " ")
	if !ok || len(op) != 1 {
		return Operation{}, fmt.Errorf("expected \"+ N\", \"* N\" or \"* old\", got %q", s)
	}
	o := Operation{Op: Operator(op[0])}
	if o.Op != Add && o.Op != Multiply {
		return Operation{}, fmt.Errorf("unknown operator %q", op)
	}
	if arg == "old" {
		o.Self = true
		return o, nil
	}
	v, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return Operation{}, err
	}
	o.Operand = v

	return o, nil
}
