// Package topology provides the immutable weighted graph over which shelters
// and requests are located.
//
// The Graph G = (V,E) is deliberately small in scope:
//
//   - Nodes are dense integers 0..N-1 fixed at construction (Node).
//   - Edges are directed, weighted with non-negative int64 costs, and owned by
//     their source node's adjacency list. Symmetric roads are two explicit
//     inserts (Builder.AddBidirectional is a shorthand for exactly that).
//   - Self-loops and negative weights are rejected at insertion, so every
//     built Graph satisfies the preconditions of label-setting shortest paths.
//   - Once Build returns, the Graph is never mutated again and is safe for
//     unsynchronized concurrent reads.
//
// Construction:
//
//	b, _ := topology.NewBuilder(15)
//	_ = b.AddBidirectional(0, 1, 5)
//	_ = b.AddEdge(1, 4, 12) // one-way
//	g, _ := b.Build()
//
// Queries:
//
//	NodeCount() int                       // O(1)
//	EdgeCount() int                       // O(1)
//	HasNode(n Node) bool                  // O(1)
//	Neighbors(n Node) ([]Edge, error)     // O(deg n), insertion order, copy
//	Degree(n Node) (int, error)           // O(1)
//	Edges() []EdgeSpec                    // O(V+E), by source then insertion
//
// Errors:
//
//	ErrInvalidNode    – node id outside [0, N)
//	ErrNegativeWeight – weight < 0
//	ErrSelfLoop       – from == to
//	ErrBadNodeCount   – N <= 0
//	ErrBuilt          – builder reused after Build
package topology
