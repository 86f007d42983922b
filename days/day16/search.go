package day16

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2022/pqueue"
	"github.com/katalvlaran/aoc2022/puzzle"
)

// Sentinel errors for MaxPressure.
var (
	// ErrUnknownStart indicates the start valve is not part of the network.
	ErrUnknownStart = errors.New("day16: unknown start valve")
	// ErrBadAgents indicates an agent count other than 1 or 2.
	ErrBadAgents = errors.New("day16: agents must be 1 or 2")
	// ErrTooManyValves indicates more useful valves than the open-set bitmask holds.
	ErrTooManyValves = errors.New("day16: more than 64 valves with positive flow")
)

const (
	// maxAgents is the number of agent slots in a state.
	maxAgents = 2
	// maxUseful is the width of the open-valve bitmask.
	maxUseful = 64
)

// agent is one walker: the point it stands on and the minutes it has left.
type agent struct {
	pos  int
	time int
}

// state is an immutable node of the search space. Transitions build new
// states; nothing mutates a state after it is pushed.
//
// agents are kept in canonical order (more time first, then lower position)
// so that two states differing only by which walker is which share a signature.
type state struct {
	agents   [maxAgents]agent
	open     uint64
	pressure int
}

// signature identifies states with identical futures: same open valves,
// same positions and same remaining minutes.
type signature struct {
	open   uint64
	agents [maxAgents]agent
}

func (s state) signature() signature {
	return signature{open: s.open, agents: s.agents}
}

// canonical returns s with its agents sorted. A walker with no time left has
// no position.
func (s state) canonical() state {
	for i := range s.agents {
		if s.agents[i].time <= 0 {
			s.agents[i] = agent{}
		}
	}
	a, b := s.agents[0], s.agents[1]
	if b.time > a.time || (b.time == a.time && b.pos < a.pos) {
		s.agents[0], s.agents[1] = b, a
	}

	return s
}

// byPressure orders the frontier: highest pressure first, then most time left.
func byPressure(a, b state) bool {
	if a.pressure != b.pressure {
		return a.pressure > b.pressure
	}

	return a.agents[0].time+a.agents[1].time > b.agents[0].time+b.agents[1].time
}

// planner holds the compact model the search runs on: useful valves are
// indexed 0..k-1 and the start point is index k.
type planner struct {
	flow []int
	dist [][]int // hop distance, -1 when disconnected
}

// newPlanner compacts n to the useful valves plus start.
func newPlanner(n *Network, start string) (*planner, error) {
	if _, ok := n.valves[start]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStart, start)
	}
	useful := n.Useful()
	if len(useful) > maxUseful {
		return nil, fmt.Errorf("%w: %w: %d", puzzle.ErrMalformedInput, ErrTooManyValves, len(useful))
	}
	points := append(append([]string(nil), useful...), start)
	p := &planner{
		flow: make([]int, len(useful)),
		dist: make([][]int, len(points)),
	}
	for i, id := range useful {
		p.flow[i] = n.valves[id].Flow
	}
	for i, a := range points {
		p.dist[i] = make([]int, len(points))
		for j, b := range points {
			d, ok := n.dist.At(a, b)
			if !ok {
				d = -1
			}
			p.dist[i][j] = d
		}
	}

	return p, nil
}

// MaxPressure returns the most pressure that agents walkers, all starting at
// start with minutes on the clock, can release.
//
// Each transition sends one walker to a closed valve: it spends distance+1
// minutes (travel, then one to open) and the valve's flow counts for every
// minute left afterwards. A valve that would open with no minute left is not
// a transition. With two walkers the one with more time left moves next, and
// it may instead stop for good, leaving the rest to the other.
//
// Exploration is best-first on released pressure with two prunings:
//   - dominance: a state is dropped when an earlier state with the same
//     signature already released at least as much pressure;
//   - bound: a state is dropped when even opening every closed valve as soon
//     as the nearest walker could reach it would not beat the best so far.
func (n *Network) MaxPressure(start string, minutes, agents int) (int, error) {
	if agents < 1 || agents > maxAgents {
		return 0, fmt.Errorf("%w: %d", ErrBadAgents, agents)
	}
	p, err := newPlanner(n, start)
	if err != nil {
		return 0, err
	}
	if minutes <= 0 {
		return 0, nil
	}

	return p.search(minutes, agents), nil
}

// search runs the best-first exploration and returns the best pressure seen.
func (p *planner) search(minutes, agents int) int {
	home := len(p.flow)
	var root state
	for i := range root.agents {
		root.agents[i] = agent{pos: home}
		if i < agents {
			root.agents[i].time = minutes
		}
	}
	root = root.canonical()

	seen := map[signature]int{root.signature(): 0}
	frontier := pqueue.New(byPressure)
	frontier.Push(root)
	best := 0

	for {
		cur, ok := frontier.Pop()
		if !ok {
			return best
		}
		// 1) Dominated by a strictly better twin pushed later.
		if seen[cur.signature()] > cur.pressure {
			continue
		}
		if cur.pressure > best {
			best = cur.pressure
		}
		// 2) Cannot beat the best even optimistically.
		if p.bound(cur) <= best {
			continue
		}

		// 3) Expand the walker with the most time left.
		for _, next := range p.expand(cur) {
			sig := next.signature()
			if old, ok := seen[sig]; ok && old >= next.pressure {
				continue
			}
			seen[sig] = next.pressure
			frontier.Push(next)
		}
	}
}

// expand lists the successors of s.
func (p *planner) expand(s state) []state {
	mover := s.agents[0]
	if mover.time <= 0 {
		return nil
	}
	var out []state
	for v, flow := range p.flow {
		if s.open&(1<<uint(v)) != 0 {
			continue
		}
		d := p.dist[mover.pos][v]
		if d < 0 || mover.time <= d+1 {
			continue
		}
		left := mover.time - d - 1
		next := s
		next.agents[0] = agent{pos: v, time: left}
		next.open |= 1 << uint(v)
		next.pressure += left * flow
		out = append(out, next.canonical())
	}
	// The mover may retire while the other walker still has time.
	if s.agents[1].time > 0 {
		next := s
		next.agents[0].time = 0
		out = append(out, next.canonical())
	}

	return out
}

// bound is an upper limit on the pressure any descendant of s can reach.
func (p *planner) bound(s state) int {
	total := s.pressure
	for v, flow := range p.flow {
		if s.open&(1<<uint(v)) != 0 {
			continue
		}
		left := 0
		for _, a := range s.agents {
			d := p.dist[a.pos][v]
			if d < 0 {
				continue
			}
			if t := a.time - d - 1; t > left {
				left = t
			}
		}
		total += left * flow
	}

	return total
}

// maxPressureAnswer adapts MaxPressure to a puzzle part.
func maxPressureAnswer(n *Network, minutes, agents int) func() (string, error) {
	return func() (string, error) {
		v, err := n.MaxPressure(StartValve, minutes, agents)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	}
}
