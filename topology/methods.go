// File: methods.go
// Role: Read-only queries over a built Graph.
// Determinism:
//   - Neighbors() preserves insertion order.
//   - Edges() orders by source node ascending, then insertion order.
// Concurrency:
//   - Graph is immutable; no locks are taken.

package topology

import "fmt"

// NodeCount returns N, the number of nodes in the graph.
//
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of directed edges.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// HasNode reports whether n lies in [0, NodeCount()).
func (g *Graph) HasNode(n Node) bool {
	return n >= 0 && int(n) < len(g.adjacency)
}

// Validate returns ErrInvalidNode (wrapped with the offending id) when n is out of range.
func (g *Graph) Validate(n Node) error {
	if !g.HasNode(n) {
		return fmt.Errorf("%w: %d (nodes=%d)", ErrInvalidNode, n, len(g.adjacency))
	}

	return nil
}

// Neighbors returns the outgoing edges of n in insertion order.
//
// Behavior highlights:
//   - The returned slice is a copy; callers may modify it freely.
//   - A node with no outgoing edges yields an empty, non-nil slice.
//
// Errors:
//   - ErrInvalidNode if n is out of range.
//
// Complexity: O(deg(n)).
func (g *Graph) Neighbors(n Node) ([]Edge, error) {
	if err := g.Validate(n); err != nil {
		return nil, err
	}
	src := g.adjacency[n]
	out := make([]Edge, len(src))
	copy(out, src)

	return out, nil
}

// Degree returns the out-degree of n.
func (g *Graph) Degree(n Node) (int, error) {
	if err := g.Validate(n); err != nil {
		return 0, err
	}

	return len(g.adjacency[n]), nil
}

// Edges lists every directed edge ordered by source node, then insertion order.
//
// Complexity: O(V + E).
func (g *Graph) Edges() []EdgeSpec {
	out := make([]EdgeSpec, 0, g.edgeCount)
	for from, list := range g.adjacency {
		for _, e := range list {
			out = append(out, EdgeSpec{From: Node(from), To: e.To, Weight: e.Weight})
		}
	}

	return out
}
