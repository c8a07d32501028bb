// Package dfs implements depth-first search (single-source and forest) on a
// topology.Graph using an explicit stack, so walk depth is bounded by memory
// rather than by the goroutine stack.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - topology.ErrInvalidNode   if start is out of range (wrapped).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/shelternet/topology"
)

// frame is one entry of the explicit DFS stack: a node whose outgoing
// edges are being consumed one at a time.
type frame struct {
	node  topology.Node
	depth int
	edges []topology.Edge
	next  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *topology.Graph
	opts    DFSOptions
	res     *DFSResult
	stack   []frame
	skipped int
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components in node-id order; otherwise it starts
// only from start. Returns the DFSResult or an error if aborted by context or hook.
func DFS(g *topology.Graph, start topology.Node, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal {
		if err := g.Validate(start); err != nil {
			return nil, fmt.Errorf("dfs: start: %w", err)
		}
	}

	n := g.NodeCount()
	res := &DFSResult{
		Order:   make([]topology.Node, 0, n),
		Depth:   make(map[topology.Node]int, n),
		Parent:  make(map[topology.Node]topology.Node, n),
		Visited: make([]bool, n),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res, stack: make([]frame, 0, n)}

	if dopts.FullTraversal {
		for v := topology.Node(0); int(v) < n; v++ {
			if !res.Visited[v] {
				if err := w.walk(v); err != nil {
					return res, err
				}
			}
		}
	} else if err := w.walk(start); err != nil {
		return res, err
	}

	res.SkippedNeighbors = w.skipped

	return res, nil
}

// Connected reports whether every node of g is reachable from start
// following edges in their stored direction.
func Connected(g *topology.Graph, start topology.Node, opts ...Option) (bool, error) {
	res, err := DFS(g, start, opts...)
	if err != nil {
		return false, err
	}

	return res.Count() == g.NodeCount(), nil
}

// walk runs one DFS tree rooted at root.
func (w *dfsWalker) walk(root topology.Node) error {
	if err := w.discover(root, 0); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next < len(top.edges) {
			e := top.edges[top.next]
			top.next++
			if err := w.descend(top.node, top.depth, e); err != nil {
				return err
			}
			continue
		}

		node := top.node
		w.stack = w.stack[:len(w.stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(node); err != nil {
				w.res.Order = nil

				return fmt.Errorf("dfs: OnExit hook for %d: %w", node, err)
			}
		}
		w.res.Order = append(w.res.Order, node)
	}

	return nil
}

// descend considers edge e leaving curr and discovers its head when allowed.
func (w *dfsWalker) descend(curr topology.Node, depth int, e topology.Edge) error {
	if e.To == curr {
		return nil
	}
	if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(curr, e) {
		w.skipped++
		return nil
	}
	if w.res.Visited[e.To] {
		return nil
	}
	if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
		return nil
	}
	w.res.Parent[e.To] = curr

	return w.discover(e.To, depth+1)
}

// discover marks n visited, runs the pre-order hook and pushes its frame.
func (w *dfsWalker) discover(n topology.Node, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[n] = true
	w.res.Depth[n] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", n, err)
		}
	}

	edges, err := w.graph.Neighbors(n)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: Neighbors(%d): %w", n, err)
	}
	w.stack = append(w.stack, frame{node: n, depth: depth, edges: edges})

	return nil
}
