// Package day13 orders nested list packets ("Distress Signal").
//
// A packet is a Value: either an Int or a List of Values. Compare implements
// the puzzle's recursive order: integers numerically, lists element-wise with
// a proper prefix first, and a bare integer promoted to a one-element list
// when it meets a list.
package day13

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is wrapped by Parse for every rejected packet.
var ErrSyntax = errors.New("day13: packet syntax")

// Value is an Int or a List. The interface is closed: only this package
// implements it.
type Value interface {
	fmt.Stringer
	value()
}

// Int is a leaf.
type Int int

// List owns its elements; values are never shared between lists.
type List []Value

func (Int) value()  {}
func (List) value() {}

// String renders the integer.
func (i Int) String() string { return strconv.Itoa(int(i)) }

// String renders the list in input syntax.
func (l List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')

	return sb.String()
}

// Parse reads one bracketed packet. The whole string must be consumed.
func Parse(s string) (Value, error) {
	p := parser{src: s}
	if p.peek() != '[' {
		return nil, p.fail("packet must start with '['")
	}
	v, err := p.list()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, p.fail("trailing input")
	}

	return v, nil
}

// parser is a recursive-descent reader over one line.
type parser struct {
	src string
	pos int
}

// peek returns the current byte or 0 at end of input.
func (p *parser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *parser) fail(msg string) error {
	return fmt.Errorf("%w: %s at column %d", ErrSyntax, msg, p.pos+1)
}

// value = list | int
func (p *parser) value() (Value, error) {
	switch c := p.peek(); {
	case c == '[':
		return p.list()
	case c >= '0' && c <= '9':
		return p.integer()
	default:
		return nil, p.fail("expected '[' or digit")
	}
}

// list = "[" [ value { "," value } ] "]"
func (p *parser) list() (List, error) {
	p.pos++ // '['
	out := List{}
	if p.peek() == ']' {
		p.pos++
		return out, nil
	}
	for {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return out, nil
		default:
			return nil, p.fail("expected ',' or ']'")
		}
	}
}

func (p *parser) integer() (Int, error) {
	start := p.pos
	for c := p.peek(); c >= '0' && c <= '9'; c = p.peek() {
		p.pos++
	}
	n, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return 0, p.fail(err.Error())
	}

	return Int(n), nil
}

// Compare returns -1 when a orders before b, +1 when after and 0 when the
// two are equivalent.
func Compare(a, b Value) int {
	switch x := a.(type) {
	case Int:
		switch y := b.(type) {
		case Int:
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		case List:
			return compareLists(List{x}, y)
		}
	case List:
		switch y := b.(type) {
		case Int:
			return compareLists(x, List{y})
		case List:
			return compareLists(x, y)
		}
	}
	panic(fmt.Sprintf("day13: foreign value types %T, %T", a, b))
}

func compareLists(a, b List) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}
