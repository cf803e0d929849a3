// Package dijkstra defines the configuration and result types of the
// single-source shortest-path search over edge weights.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Sentinel errors returned by Dijkstra and Result.
var (
	// ErrEmptySource indicates that no Source option was given.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target is not a member of the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates an edge with a negative or NaN weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that the target is not reachable under the given limits.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrBadMaxDistance is the panic message of WithMaxDistance for a negative cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold is the panic message of WithInfEdgeThreshold for a non-positive threshold.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures Dijkstra.
//
// Source           - starting vertex ID (required).
// MaxDistance      - vertices farther than this are left unreached. Default +Inf.
// InfEdgeThreshold - edges with weight >= threshold are impassable. Default +Inf.
type Options struct {
	Source           string
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithMaxDistance caps exploration at distance max. Panics on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) { o.MaxDistance = max }
}

// WithInfEdgeThreshold treats edges with weight >= threshold as walls.
// Panics on a non-positive or NaN threshold.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// DefaultOptions returns Options for source with no distance cap and no walls.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result holds the shortest-path tree rooted at Source.
//
//   - Dist: vertex ID -> distance; math.Inf(1) for unreached vertices.
//   - Prev: vertex ID -> predecessor vertex on a shortest path ("" for Source and unreached).
//   - PrevEdge: vertex ID -> ID of the edge used to enter it, which tells
//     parallel edges apart in a multigraph.
type Result struct {
	Source   string
	Dist     map[string]float64
	Prev     map[string]string
	PrevEdge map[string]string
}

// Reached reports whether target has a finite distance.
func (r *Result) Reached(target string) bool {
	d, ok := r.Dist[target]
	return ok && !math.IsInf(d, 1)
}

// PathTo returns the vertex sequence Source ... target.
func (r *Result) PathTo(target string) ([]string, error) {
	if _, ok := r.Dist[target]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}
	if !r.Reached(target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrNoPath, r.Source, target)
	}
	path := []string{target}
	for v := target; v != r.Source; {
		v = r.Prev[v]
		path = append(path, v)
	}
	slices.Reverse(path)

	return path, nil
}

// EdgePathTo returns the IDs of the edges along PathTo(target); empty for target == Source.
func (r *Result) EdgePathTo(target string) ([]string, error) {
	path, err := r.PathTo(target)
	if err != nil {
		return nil, err
	}
	edges := make([]string, 0, len(path)-1)
	for _, v := range path[1:] {
		edges = append(edges, r.PrevEdge[v])
	}

	return edges, nil
}
