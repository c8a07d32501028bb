package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/shelternet/topology"
)

// Dijkstra computes shortest distances from the source node (Options.Source)
// to every node of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance to v, or Unreachable.
//   - prev: predecessor slice if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     prev[source] and prev[unreachable] are NoPredecessor.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be supplied (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must lie in [0, N) (topology.ErrInvalidNode).
//
// Negative weights and self-loops cannot occur: topology rejects them when
// the graph is built, so no pre-scan is needed here.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *topology.Graph, opts ...Option) ([]int64, []topology.Node, error) {
	cfg := DefaultOptions(NoPredecessor)
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == NoPredecessor {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if err := g.Validate(cfg.Source); err != nil {
		return nil, nil, fmt.Errorf("dijkstra: source: %w", err)
	}

	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]topology.Node, n)
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *topology.Graph // read-only input
	options Options
	dist    []int64         // node → current best distance from Source
	prev    []topology.Node // node → predecessor (nil unless ReturnPath)
	visited []bool          // node → distance finalized
	pq      nodePQ          // lazy min-heap
}

// init sets every distance to Unreachable, the source to 0, and seeds the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Unreachable
		if r.prev != nil {
			r.prev[v] = NoPredecessor
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited node and relaxes its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable nodes processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale entry left behind by lazy decrease-key.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each outgoing edge of u and improves neighbor distances.
// Edges with weight ≥ InfEdgeThreshold are skipped as impassable.
func (r *runner) relax(u topology.Node) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	du := r.dist[u]
	for _, e := range edges {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		if r.visited[e.To] {
			continue
		}
		// Saturate instead of overflowing on pathological weights.
		if e.Weight > Unreachable-du {
			continue
		}
		newDist := du + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = newDist
		if r.prev != nil {
			r.prev[e.To] = u
		}
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}

	return nil
}

// nodeItem is a (node, tentative distance) heap entry.
type nodeItem struct {
	id   topology.Node
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then node id so that
// equal-distance nodes settle in a reproducible order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// PathTo reconstructs the node sequence source→…→dest from the results of a
// Dijkstra run made with WithReturnPath.
//
// Errors:
//   - ErrNoPath if dest is unreachable.
//   - topology.ErrInvalidNode (wrapped) if dest is outside the slices.
func PathTo(dist []int64, prev []topology.Node, dest topology.Node) ([]topology.Node, error) {
	if dest < 0 || int(dest) >= len(dist) || int(dest) >= len(prev) {
		return nil, fmt.Errorf("dijkstra: dest %d: %w", dest, topology.ErrInvalidNode)
	}
	if dist[dest] == Unreachable {
		return nil, fmt.Errorf("%w: node %d", ErrNoPath, dest)
	}

	path := []topology.Node{}
	for cur := dest; cur != NoPredecessor; cur = prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
