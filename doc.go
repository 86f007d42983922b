// Package aoc2022 is a set of Advent of Code 2022 solvers built on a few
// small, reusable search and grid packages.
//
// Layout:
//
//	core/      named-vertex undirected graph, safe for concurrent reads
//	gridgraph/ flat row-major grid with bounds-checked steps and sweep lanes
//	pqueue/    generic binary heap ordered by an explicit less function
//	dijkstra/  priority-first search over implicit integer-indexed graphs
//	matrix/    all-pairs hop distances closed by iterative relaxation
//	puzzle/    day definitions, registry, concurrent two-part runner
//	config/    YAML settings for the command
//	days/      one package per solved day plus the registry of all of them
//	cmd/aoc/   the command line
//
// Every day follows the same pipeline: Load parses the input into a model
// once, and the two parts are pure functions of that model (or of a clone,
// when a part simulates in place). puzzle.Solve runs both parts at once.
//
// Quick start:
//
//	aoc list
//	aoc run 16 inputs/day16.txt
//	aoc run --all --input-dir inputs
package aoc2022
