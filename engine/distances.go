package engine

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/shelternet/dijkstra"
	"github.com/katalvlaran/shelternet/topology"
)

// distanceCache memoises single-source distance vectors. The topology is
// immutable, so entries never go stale. Callers always receive a copy.
type distanceCache struct {
	graph *topology.Graph
	cache *lru.Cache[topology.Node, []int64] // nil when disabled
}

func newDistanceCache(g *topology.Graph, size int) (*distanceCache, error) {
	dc := &distanceCache{graph: g}
	if size == 0 {
		return dc, nil
	}
	c, err := lru.New[topology.Node, []int64](size)
	if err != nil {
		return nil, fmt.Errorf("engine: distance cache: %w", err)
	}
	dc.cache = c

	return dc, nil
}

// from returns distances from src; unreachable nodes hold dijkstra.Unreachable.
func (dc *distanceCache) from(src topology.Node) ([]int64, error) {
	if dc.cache != nil {
		if d, ok := dc.cache.Get(src); ok {
			return append([]int64(nil), d...), nil
		}
	}
	d, _, err := dijkstra.Dijkstra(dc.graph, dijkstra.Source(src))
	if err != nil {
		return nil, err
	}
	if dc.cache != nil {
		dc.cache.Add(src, append([]int64(nil), d...))
	}

	return d, nil
}
