// Package dfs defines the shared visitation-state constants and sentinel
// errors used by cycle detection and topological sort.
package dfs

import (
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to
	// TopologicalSort. DetectCycles treats a nil graph as cycle-free.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that TopologicalSort encountered a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)
