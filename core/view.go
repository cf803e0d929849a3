// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views (new graphs derived from an existing topology).
// Determinism:
//   - Vertex and edge IDs are preserved; the input graph is never mutated.

package core

// InducedSubgraph returns a new Graph containing only the vertices in keep and
// the edges whose endpoints are both kept. Configuration and ID are preserved.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph(g.options()...)
	out.nextEdgeID = g.nextEdgeID
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = v.clone()
		}
	}
	for _, e := range g.edges {
		if keep[e.source] && keep[e.target] {
			out.linkEdge(e.clone())
		}
	}

	return out
}

// Transpose returns a new Graph with every edge reversed (target -> source).
// Edge IDs and payload are preserved, so in-queries on g become out-queries on the result.
//
// Complexity: O(V + E).
func Transpose(g *Graph) *Graph {
	out := g.CloneEmpty()
	for _, e := range g.edges {
		r := e.clone()
		r.source, r.target = e.target, e.source
		out.linkEdge(r)
	}

	return out
}
