// File: types.go
// Role: Node, Edge, EdgeSpec and Graph declarations plus sentinel errors.
// Determinism:
//   - Adjacency lists keep insertion order; Edges() walks sources in ascending order.
// Concurrency:
//   - A built Graph is never mutated, so every read is lock-free.

package topology

import (
	"errors"
	"fmt"
)

// Sentinel errors for topology construction and queries.
var (
	// ErrInvalidNode indicates a node id outside [0, NodeCount()).
	ErrInvalidNode = errors.New("topology: node out of range")

	// ErrNegativeWeight indicates an edge with a weight below zero.
	ErrNegativeWeight = errors.New("topology: negative edge weight")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("topology: self-loop not allowed")

	// ErrBadNodeCount indicates a non-positive node count at construction.
	ErrBadNodeCount = errors.New("topology: node count must be positive")

	// ErrBuilt indicates a mutation attempt on a Builder that already produced a Graph.
	ErrBuilt = errors.New("topology: builder already built")
)

// Node identifies a location in the service area. Valid nodes are 0..N-1.
type Node int

// Edge is one directed, weighted adjacency entry owned by its source node.
type Edge struct {
	// To is the destination node.
	To Node

	// Weight is the non-negative travel cost.
	Weight int64
}

// EdgeSpec is a fully qualified directed edge, used for loading and listing.
type EdgeSpec struct {
	From   Node
	To     Node
	Weight int64
}

// String renders the edge as "from→to(weight)".
func (e EdgeSpec) String() string {
	return fmt.Sprintf("%d→%d(%d)", e.From, e.To, e.Weight)
}

// Graph is an immutable weighted adjacency structure over a fixed node set.
//
// Graphs are produced by Builder.Build or New and are read-only afterwards,
// so any number of goroutines may query them without synchronization.
type Graph struct {
	adjacency [][]Edge // adjacency[from] = outgoing edges in insertion order
	edgeCount int      // total number of directed edges
}
