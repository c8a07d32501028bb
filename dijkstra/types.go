// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a topology.Graph.
//
// Options:
//
//	– Source:           starting node (required; must lie in [0, N)).
//	– ReturnPath:       if true, return the predecessor slice for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; nodes beyond this stay Unreachable.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNoSource        if no Source option was supplied.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panics in the option constructor).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panics in the option constructor).
//	– topology.ErrInvalidNode (wrapped) if Source is out of range.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/shelternet/topology"
)

// Unreachable is the distance reported for nodes with no path from the source.
const Unreachable int64 = math.MaxInt64

// NoPredecessor marks the source node and unreachable nodes in the prev slice.
const NoPredecessor topology.Node = -1

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that Dijkstra was called without the Source option.
	ErrNoSource = errors.New("dijkstra: source node not set")

	// ErrNilGraph indicates that a nil *topology.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates PathTo was asked for a node the source cannot reach.
	ErrNoPath = errors.New("dijkstra: destination unreachable")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting node; NoPredecessor (-1) means "not set".
// ReturnPath       – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      – optional cap on distances to explore. Default math.MaxInt64.
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable. Default math.MaxInt64.
type Options struct {
	Source           topology.Node
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node. Must be supplied on every call.
func Source(n topology.Node) Option {
	return func(o *Options) {
		o.Source = n
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are left Unreachable.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable (closed roads).
// Panics with ErrBadInfThreshold on zero or negative values.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source node.
//
// Defaults:
//   - ReturnPath:       false.
//   - MaxDistance:      math.MaxInt64 (explore everything reachable).
//   - InfEdgeThreshold: math.MaxInt64 (no closed roads).
func DefaultOptions(source topology.Node) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
