package day16

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2022/core"
	"github.com/katalvlaran/aoc2022/matrix"
	"github.com/katalvlaran/aoc2022/puzzle"
)

// Valve is one room of the tunnel network.
type Valve struct {
	ID      string
	Flow    int
	Tunnels []string
}

// Network is the parsed tunnel system with its precomputed hop distances.
// It is read-only after Parse and safe for concurrent searches.
type Network struct {
	valves map[string]Valve
	graph  *core.Graph
	dist   *matrix.Distances
}

var valveLine = regexp.MustCompile(`^Valve (\w+) has flow rate=(\d+); tunnels? leads? to valves? (\w+(?:, \w+)*)$`)

// Parse reads one valve per line, e.g.
//
//	Valve BB has flow rate=13; tunnels lead to valves CC, AA
//
// Every tunnel must lead to a declared valve.
func Parse(r io.Reader) (*Network, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	n := &Network{
		valves: make(map[string]Valve),
		graph:  core.NewGraph(),
	}
	declared := make(map[string]int) // id → line number
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := valveLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return nil, puzzle.Malformed(i+1, line, "expected \"Valve XX has flow rate=N; tunnels lead to valves A, B\"")
		}
		flow, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, puzzle.Malformed(i+1, line, "flow rate: %v", err)
		}
		if prev, dup := declared[m[1]]; dup {
			return nil, puzzle.Malformed(i+1, line, "valve %s already declared on line %d", m[1], prev)
		}
		declared[m[1]] = i + 1
		v := Valve{ID: m[1], Flow: flow, Tunnels: strings.Split(m[3], ", ")}
		n.valves[v.ID] = v
		if err := n.graph.AddVertex(v.ID); err != nil {
			return nil, puzzle.Malformed(i+1, line, "%v", err)
		}
	}
	if len(n.valves) == 0 {
		return nil, fmt.Errorf("%w: no valves", puzzle.ErrMalformedInput)
	}
	for _, id := range n.graph.Vertices() {
		v := n.valves[id]
		for _, to := range v.Tunnels {
			if _, ok := n.valves[to]; !ok {
				line := declared[v.ID]
				return nil, puzzle.Malformed(line, lines[line-1], "tunnel to undeclared valve %s", to)
			}
			if err := n.graph.AddEdge(v.ID, to); err != nil {
				line := declared[v.ID]
				return nil, puzzle.Malformed(line, lines[line-1], "%v", err)
			}
		}
	}
	if n.dist, err = matrix.NewDistances(n.graph); err != nil {
		return nil, err
	}

	return n, nil
}

// Valve returns the valve with the given ID.
func (n *Network) Valve(id string) (Valve, bool) {
	v, ok := n.valves[id]
	return v, ok
}

// Distance returns the minutes needed to walk from a to b.
// ok is false for unknown or disconnected valves.
func (n *Network) Distance(a, b string) (int, bool) {
	return n.dist.At(a, b)
}

// Useful returns the IDs of valves with positive flow, highest flow first,
// ties by ID.
func (n *Network) Useful() []string {
	var ids []string
	for id, v := range n.valves {
		if v.Flow > 0 {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		fi, fj := n.valves[ids[i]].Flow, n.valves[ids[j]].Flow
		if fi != fj {
			return fi > fj
		}
		return ids[i] < ids[j]
	})

	return ids
}
