package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/shelternet/topology"
)

var (
	// ErrGraphNil is returned for a nil *topology.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation marks an invalid Option (e.g. a negative hop limit).
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by Result.PathTo for a node the walk never saw.
	ErrNotReached = errors.New("bfs: node not reached")
)

// NoParent marks the start node and unreached nodes in Result.Parent.
const NoParent topology.Node = -1

// Option mutates Options. Invalid values are recorded and reported by BFS.
type Option func(*Options)

// Options tunes a walk.
type Options struct {
	Ctx context.Context

	// OnVisit runs as each node is dequeued; a non-nil error stops the walk.
	OnVisit func(n topology.Node, hops int) error

	// MaxDepth > 0 bounds the hop count; 0 means unbounded.
	MaxDepth int

	// FilterNeighbor returning false skips the road curr→e.To.
	FilterNeighbor func(curr topology.Node, e topology.Edge) bool

	err error
}

// DefaultOptions: background context, unbounded, every road allowed.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(topology.Node, int) error { return nil },
		FilterNeighbor: func(topology.Node, topology.Edge) bool { return true },
	}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a visit hook. nil is ignored.
func WithOnVisit(fn func(n topology.Node, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to d hops (inclusive). d == 0 lifts the
// limit; d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips roads for which fn returns false. nil is ignored.
func WithFilterNeighbor(fn func(curr topology.Node, e topology.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result is the outcome of one walk. Depth and Parent are indexed by node;
// unreached nodes hold -1 and NoParent.
type Result struct {
	Start  topology.Node
	Order  []topology.Node
	Depth  []int
	Parent []topology.Node
}

// Reached reports whether n was visited.
func (r *Result) Reached(n topology.Node) bool {
	return n >= 0 && int(n) < len(r.Depth) && r.Depth[n] >= 0
}

// Levels groups the visited nodes by hop count: Levels()[h] lists the nodes
// h hops from Start, in visit order.
func (r *Result) Levels() [][]topology.Node {
	var levels [][]topology.Node
	for _, n := range r.Order {
		h := r.Depth[n]
		for len(levels) <= h {
			levels = append(levels, nil)
		}
		levels[h] = append(levels[h], n)
	}

	return levels
}

// PathTo returns the fewest-hop route Start→dest, or ErrNotReached.
func (r *Result) PathTo(dest topology.Node) ([]topology.Node, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}
	path := make([]topology.Node, r.Depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
