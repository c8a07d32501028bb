// Package dfs implements depth-first traversal of the service-area topology
// and the reachability check built on it.
//
// What:
//
//   - DFS explores as far as possible along each road before backtracking.
//     It supports pre-order and post-order hooks, cancellation via
//     context.Context, depth limiting, edge filtering and forest traversal.
//   - Connected reports whether every area can be reached from a start area,
//     which is how the network-connectivity check decides if one shelter's
//     node reaches the whole map.
//
// The walk keeps its own stack of frames instead of recursing. A frame holds
// a node and a cursor into its neighbor list, so pre-order and post-order
// match the recursive formulation exactly while very long corridors cannot
// overflow the goroutine stack.
//
// Determinism:
//
//	Neighbors are consumed in insertion order and forest roots in id order,
//	so Order, Depth and Parent are reproducible for a given graph.
//
// Complexity:
//
//   - Time:   O(V+E)
//   - Memory: O(V) for the frame stack and metadata.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - topology.ErrInvalidNode start node not in graph (wrapped)
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
