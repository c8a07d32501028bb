// Package bfs walks the road topology outward from a node in hop order. The
// engine uses it to list the areas around a station.
//
// Result.Depth and Result.Parent are dense slices indexed by node, so a
// lookup never allocates; unreached nodes hold -1 and NoParent. Levels
// regroups the visit order by hop count and PathTo rebuilds the fewest-hop
// route.
//
// Roads are followed only in their stored direction, in insertion order,
// so the visit order is reproducible. Options bound the hop count, filter
// roads, cancel through a context and observe each visit.
//
// Time O(V + E), memory O(V).
package bfs
