// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Identity and read-only configuration getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Every getter is O(1) except Stats, which scans the edge catalog once.

package core

import "github.com/iglsynth/iglsynth/entity"

// ID returns the immutable graph identifier.
func (g *Graph) ID() string { return g.id }

// ClassName returns "Graph".
func (g *Graph) ClassName() string { return GraphClass }

// String returns "<Graph object with id=ID>".
func (g *Graph) String() string { return entity.Describe(g) }

// IsMultigraph reports whether parallel edges between the same ordered pair are permitted.
//
// The flag is fixed at construction (WithMultigraph); it is a policy, not a
// measurement: a multigraph with no parallel edges still reports true.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) IsMultigraph() bool { return g.multigraph }

// Looped reports whether self-loops are permitted by policy.
// If false, adding an edge v -> v fails with ErrLoopNotAllowed.
func (g *Graph) Looped() bool { return g.allowLoops }

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	Multigraph  bool
	AllowsLoops bool

	VertexCount int
	EdgeCount   int

	// SelfLoopCount counts edges with source == target.
	SelfLoopCount int

	// ParallelPairCount counts ordered pairs (u,v) joined by more than one edge.
	ParallelPairCount int

	// SinkCount counts vertices without outgoing edges.
	SinkCount int
}

// LeftTotal reports whether every vertex has at least one outgoing edge.
// An empty graph is left-total.
func (s *GraphStats) LeftTotal() bool { return s.SinkCount == 0 }

// Stats returns a snapshot of flags and counts.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		Multigraph:  g.multigraph,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	for _, e := range g.edges {
		if e.IsLoop() {
			stats.SelfLoopCount++
		}
	}
	for id := range g.vertices {
		if len(g.out[id]) == 0 {
			stats.SinkCount++
		}
	}
	for _, targets := range g.out {
		for _, set := range targets {
			if len(set) > 1 {
				stats.ParallelPairCount++
			}
		}
	}

	return &stats
}
