// Package dijkstra defines core types and configuration options
// for priority-first shortest-path search over implicit graphs.
//
// Vertices are dense integer handles 0..Order()-1; the graph never
// materialises its edges, it reports them on demand through AppendArcs.
//
// Options:
//
//	– Source / Sources:  one or more vertices seeded at distance 0.
//	– WithTarget:        predicate; the search stops at the first target popped.
//	– WithMaxDistance:   vertices farther than this are not explored.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph is nil.
//	– ErrNoSource          if no source vertex was configured.
//	– ErrSourceOutOfRange  if a source is not a valid vertex handle.
//	– ErrNegativeWeight    if an arc with negative weight is reported.
//	– ErrNoPath            if a target predicate was set and no target is reachable.
//	– ErrBadMaxDistance    if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil Graph was passed to Search.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoSource indicates that neither Source nor Sources was supplied.
	ErrNoSource = errors.New("dijkstra: no source vertex")

	// ErrSourceOutOfRange indicates a source handle outside 0..Order()-1.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates that the graph reported a negative arc weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates the frontier was exhausted before any target was popped.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreachable is the distance reported for vertices the search never reached.
const Unreachable = math.MaxInt64

// Arc is an outgoing edge to vertex To with non-negative Weight.
type Arc struct {
	To     int
	Weight int64
}

// Graph is an implicit directed graph over vertex handles 0..Order()-1.
//
// AppendArcs appends the arcs leaving u to dst and returns the extended slice.
// Implementations decide admissibility; off-graph neighbours must simply not
// be reported.
type Graph interface {
	Order() int
	AppendArcs(dst []Arc, u int) []Arc
}

// Options configures the behavior of Search.
//
// Sources      – vertices seeded with distance 0 (at least one).
// Target       – optional predicate; when set, Search stops at the first target popped.
// MaxDistance  – optional cap on distances to explore. Default math.MaxInt64.
type Options struct {
	Sources     []int
	Target      func(v int) bool
	MaxDistance int64
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// Source adds a single source vertex.
func Source(v int) Option {
	return func(o *Options) {
		o.Sources = append(o.Sources, v)
	}
}

// Sources adds several source vertices; the search behaves as if a virtual
// root were connected to each of them by a zero-weight arc.
func Sources(vs ...int) Option {
	return func(o *Options) {
		o.Sources = append(o.Sources, vs...)
	}
}

// WithTarget stops the search at the first popped vertex satisfying pred.
// The first pop is optimal because weights are non-negative.
func WithTarget(pred func(v int) bool) Option {
	return func(o *Options) {
		o.Target = pred
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no sources, no target and no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxInt64}
}
