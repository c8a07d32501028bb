// Package dijkstra resolves single-source shortest distances over a
// topology.Graph with non-negative integer weights.
//
// Overview:
//
//   - Label-setting search: the closest unvisited node is extracted from a
//     min-heap, marked visited (its distance is final), and its outgoing
//     edges are relaxed with dist[u] + w < dist[v]. A visited node is never
//     processed again. The loop ends when the frontier is empty.
//   - Lazy decrease-key: improved distances push a new heap entry; stale
//     entries are skipped when popped.
//   - Equal-distance nodes are extracted in ascending node order, so runs are
//     reproducible.
//
// When to use:
//
//   - Finding the nearest shelter from a request's location node.
//   - Verifying reachability with distances (Unreachable marks "no path").
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (O(E) worst-case heap entries under lazy decrease-key)
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:        Source option missing.
//   - ErrNilGraph:        nil *topology.Graph.
//   - topology.ErrInvalidNode (wrapped): source outside [0, N).
//   - ErrBadMaxDistance / ErrBadInfThreshold: panics from option constructors.
//   - ErrNoPath:          PathTo on an unreachable destination.
//
// API reference:
//
//	func Dijkstra(g *topology.Graph, opts ...Option) (dist []int64, prev []topology.Node, err error)
//	func PathTo(dist []int64, prev []topology.Node, dest topology.Node) ([]topology.Node, error)
//
// Thread safety:
//
//   - Every call allocates its own runner; the graph is immutable, so any
//     number of Dijkstra calls may run concurrently on the same graph.
package dijkstra
