// Package core defines the named-vertex Graph used to model tunnel networks,
// together with its sentinel errors.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - an edge from a vertex to itself was requested.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Graph is an undirected, unweighted graph of string-identified vertices.
//
// Every edge has unit length; parallel edges collapse into one.
// mu guards both vertices and adjacency, so a fully built Graph may be
// queried from several goroutines at once.
type Graph struct {
	mu sync.RWMutex

	// adjacency[u] is the set of vertices sharing an edge with u.
	// A vertex with no edges still owns an empty set.
	adjacency map[string]map[string]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string]map[string]struct{}),
	}
}
