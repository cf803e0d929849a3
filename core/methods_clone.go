// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID so Connect continues the same "e<N>" sequence.
// Notes:
//   - Clones keep the graph ID, flags and logger; vertex-removed hooks belong to the
//     original owner and are not copied.

package core

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	clone := NewGraph(g.options()...)
	clone.nextEdgeID = g.nextEdgeID
	for id, v := range g.vertices {
		clone.vertices[id] = v.clone()
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	for _, e := range g.edges {
		clone.linkEdge(e.clone())
	}

	return clone
}

// Clear removes every vertex and edge while preserving identity and configuration.
// The "e<N>" sequence restarts at e1. Vertex-removed hooks are not invoked.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.out = make(adjacency)
	g.in = make(adjacency)
	g.nextEdgeID = 0
}

// options reproduces g's configuration as GraphOptions.
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithID(g.id), WithLogger(g.logger)}
	if g.multigraph {
		opts = append(opts, WithMultigraph())
	}
	if !g.allowLoops {
		opts = append(opts, WithoutLoops())
	}

	return opts
}
