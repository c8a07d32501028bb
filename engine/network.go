package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/shelternet/bfs"
	"github.com/katalvlaran/shelternet/dfs"
	"github.com/katalvlaran/shelternet/topology"
)

// Connectivity walks the topology depth-first from the lowest-id shelter's
// node and reports which shelters were reached. With no shelters the report
// is empty and Connected() is true.
func (e *Engine) Connectivity(ctx context.Context) (Connectivity, error) {
	shelters := e.shelters.List()
	if len(shelters) == 0 {
		return Connectivity{Origin: NoShelter}, nil
	}
	origin := shelters[0]

	rep := Connectivity{Origin: origin.ID, OriginNode: origin.Node}
	res, err := dfs.DFS(e.graph, origin.Node,
		dfs.WithContext(ctx),
		dfs.WithOnVisit(func(n topology.Node) error {
			rep.Order = append(rep.Order, n)
			return nil
		}),
	)
	if err != nil {
		return Connectivity{}, fmt.Errorf("engine: connectivity: %w", err)
	}
	for _, s := range shelters {
		if !res.Visited[s.Node] {
			rep.Unreachable = append(rep.Unreachable, s.ID)
		}
	}
	e.logger.Debug("connectivity checked",
		zap.Int("origin_shelter", origin.ID),
		zap.Int("reached_nodes", res.Count()),
		zap.Ints("unreachable_shelters", rep.Unreachable))

	return rep, nil
}

// IsNetworkConnected reports whether every shelter node is reachable from
// the lowest-id shelter's node.
func (e *Engine) IsNetworkConnected(ctx context.Context) (bool, error) {
	rep, err := e.Connectivity(ctx)
	if err != nil {
		return false, err
	}

	return rep.Connected(), nil
}

// NearbyAreas lists nodes reachable from node within maxHops road segments,
// in breadth-first order. maxHops == 0 means no limit.
// Errors: ErrInvalidLocation, ErrBadOption (negative maxHops), ctx.Err().
func (e *Engine) NearbyAreas(ctx context.Context, node topology.Node, maxHops int) ([]Area, error) {
	if err := e.graph.Validate(node); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLocation, err)
	}
	if maxHops < 0 {
		return nil, fmt.Errorf("%w: maxHops %d", ErrBadOption, maxHops)
	}
	res, err := bfs.BFS(e.graph, node, bfs.WithContext(ctx), bfs.WithMaxDepth(maxHops))
	if err != nil {
		return nil, fmt.Errorf("engine: nearby areas: %w", err)
	}
	out := make([]Area, len(res.Order))
	for i, n := range res.Order {
		out[i] = Area{Node: n, Hops: res.Depth[n]}
	}

	return out, nil
}
