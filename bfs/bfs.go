package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/shelternet/topology"
)

// walker holds the state of one walk. The queue is a slice with a moving
// head, so every node is appended and read exactly once.
type walker struct {
	g    *topology.Graph
	opts Options
	ctx  context.Context
	head int
	res  *Result
}

// BFS walks g outward from start in non-decreasing hop order, following
// edges in their stored direction and ignoring weights.
//
// Errors: ErrGraphNil, topology.ErrInvalidNode (wrapped) for a bad start,
// ErrOptionViolation, ctx.Err() on cancellation, or a wrapped OnVisit error.
// The partial Result is returned alongside hook and cancellation errors.
func BFS(g *topology.Graph, start topology.Node, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.Validate(start); err != nil {
		return nil, fmt.Errorf("bfs: start: %w", err)
	}

	n := g.NodeCount()
	res := &Result{
		Start:  start,
		Order:  make([]topology.Node, 0, n),
		Depth:  make([]int, n),
		Parent: make([]topology.Node, n),
	}
	for i := range res.Depth {
		res.Depth[i] = -1
		res.Parent[i] = NoParent
	}
	w := &walker{g: g, opts: o, ctx: o.Ctx, res: res}
	w.discover(start, 0, NoParent)

	return res, w.run()
}

// discover marks n seen at the given hop count; Order doubles as the queue.
func (w *walker) discover(n topology.Node, hops int, parent topology.Node) {
	w.res.Depth[n] = hops
	w.res.Parent[n] = parent
	w.res.Order = append(w.res.Order, n)
}

func (w *walker) run() error {
	for w.head < len(w.res.Order) {
		if err := w.ctx.Err(); err != nil {
			w.res.Order = w.res.Order[:w.head]
			return err
		}
		curr := w.res.Order[w.head]
		w.head++
		hops := w.res.Depth[curr]

		if err := w.opts.OnVisit(curr, hops); err != nil {
			w.res.Order = w.res.Order[:w.head]
			return fmt.Errorf("bfs: OnVisit at %d: %w", curr, err)
		}
		if w.opts.MaxDepth > 0 && hops >= w.opts.MaxDepth {
			continue
		}
		edges, err := w.g.Neighbors(curr)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %d: %w", curr, err)
		}
		for _, e := range edges {
			if w.res.Depth[e.To] < 0 && w.opts.FilterNeighbor(curr, e) {
				w.discover(e.To, hops+1, curr)
			}
		}
	}

	return nil
}
