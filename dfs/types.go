// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/shelternet/topology"
)

var (
	// ErrGraphNil is returned when a nil *topology.Graph is passed to DFS or Connected.
	ErrGraphNil = errors.New("dfs: graph is nil")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts DFS at the next discovery.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a node (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(n topology.Node) error

	// OnExit, if non-nil, is invoked after all descendants of a node
	// have been explored (post-order), before appending to result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(n topology.Node) error

	// MaxDepth, if non-negative, limits the walk to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each outgoing edge before descending.
	// Return true to follow that edge, false to skip it.
	FilterNeighbor func(curr topology.Node, e topology.Edge) bool

	// FullTraversal, if true, runs DFS from every unvisited node in id order,
	// covering disconnected components (forest traversal). Default is false.
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(n topology.Node) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(n topology.Node) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start node is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters outgoing edges.
// If fn returns false the edge is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(curr topology.Node, e topology.Edge) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []topology.Node

	// Depth maps each reached node to its tree depth from the root of its DFS tree.
	Depth map[topology.Node]int

	// Parent maps each node to the node from which it was first discovered.
	// Roots do not appear in this map.
	Parent map[topology.Node]topology.Node

	// Visited is indexed by node id and flags which nodes were reached.
	Visited []bool

	// SkippedNeighbors reports how many edges were skipped
	// due to FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}

// Count returns the number of reached nodes.
func (r *DFSResult) Count() int {
	c := 0
	for _, v := range r.Visited {
		if v {
			c++
		}
	}

	return c
}
