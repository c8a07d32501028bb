// File: builder.go
// Role: Construction-time mutation of the topology (Builder, New).
// Policy:
//   - Every edge is validated on insertion; the first failure is returned to the caller.
//   - Build hands over the adjacency and freezes the Builder.

package topology

import "fmt"

// Builder accumulates validated edges before freezing them into a Graph.
// A Builder is not safe for concurrent use; build the topology on one
// goroutine, then share the resulting *Graph freely.
type Builder struct {
	adjacency [][]Edge
	edgeCount int
	built     bool
}

// NewBuilder prepares a Builder for nodeCount nodes (0..nodeCount-1).
//
// Errors:
//   - ErrBadNodeCount if nodeCount <= 0.
//
// Complexity: O(nodeCount).
func NewBuilder(nodeCount int) (*Builder, error) {
	if nodeCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadNodeCount, nodeCount)
	}

	return &Builder{adjacency: make([][]Edge, nodeCount)}, nil
}

// AddEdge appends the directed edge from→to with the given weight.
// No mirror edge is created: an edge from A to B implies nothing about B to A.
//
// Validation order:
//  1. builder not yet built (ErrBuilt),
//  2. both endpoints in range (ErrInvalidNode),
//  3. from != to (ErrSelfLoop),
//  4. weight >= 0 (ErrNegativeWeight).
//
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(from, to Node, weight int64) error {
	if b.built {
		return ErrBuilt
	}
	n := len(b.adjacency)
	if from < 0 || int(from) >= n {
		return fmt.Errorf("%w: from=%d (nodes=%d)", ErrInvalidNode, from, n)
	}
	if to < 0 || int(to) >= n {
		return fmt.Errorf("%w: to=%d (nodes=%d)", ErrInvalidNode, to, n)
	}
	if from == to {
		return fmt.Errorf("%w: node %d", ErrSelfLoop, from)
	}
	if weight < 0 {
		return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, from, to, weight)
	}

	b.adjacency[from] = append(b.adjacency[from], Edge{To: to, Weight: weight})
	b.edgeCount++

	return nil
}

// AddBidirectional inserts u→v and v→u with the same weight, each as an
// explicit directed edge. Nothing is inserted if either direction is invalid.
func (b *Builder) AddBidirectional(u, v Node, weight int64) error {
	if err := b.AddEdge(u, v, weight); err != nil {
		return err
	}
	// The reverse edge has the same endpoints and weight, so it is valid too.
	b.adjacency[v] = append(b.adjacency[v], Edge{To: u, Weight: weight})
	b.edgeCount++

	return nil
}

// Build freezes the Builder and returns the immutable Graph.
// Subsequent AddEdge calls on this Builder fail with ErrBuilt.
//
// Complexity: O(1); the adjacency is transferred, not copied.
func (b *Builder) Build() (*Graph, error) {
	if b.built {
		return nil, ErrBuilt
	}
	b.built = true

	g := &Graph{adjacency: b.adjacency, edgeCount: b.edgeCount}
	b.adjacency = nil

	return g, nil
}

// New builds a Graph with nodeCount nodes from the given directed edge list.
// It is a convenience over NewBuilder/AddEdge/Build and fails on the first
// invalid edge.
func New(nodeCount int, edges []EdgeSpec) (*Graph, error) {
	b, err := NewBuilder(nodeCount)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err = b.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edge #%d: %w", i, err)
		}
	}

	return b.Build()
}
