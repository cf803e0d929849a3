// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Ownership:
//   - AddVertex stores a copy; Vertex(id) returns a copy. Callers never alias owned state.
package core

import "sort"

// AddVertex inserts a copy of v if no vertex with the same ID is present.
//
// Behavior highlights:
//   - Returns true when the vertex was added.
//   - Returns false and leaves the graph unchanged when v is nil, its ID is empty
//     (a bare &Vertex{} literal), or its ID is already present.
//
// Complexity:
//   - Time O(1) amortized plus the size of v.Attrs.
func (g *Graph) AddVertex(v *Vertex) bool {
	if v.IsNil() {
		g.logger.Debug("core: vertex rejected", "graph", g.id, "reason", "nil vertex")
		return false
	}
	if v.id == "" {
		g.logger.Debug("core: vertex rejected", "graph", g.id, "reason", "empty id")
		return false
	}
	if _, exists := g.vertices[v.id]; exists {
		g.logger.Debug("core: vertex rejected", "graph", g.id, "vertex", v.id, "reason", "duplicate id")
		return false
	}
	g.vertices[v.id] = v.clone()

	return true
}

// AddVertices adds each vertex independently and reports per-item success.
// result[i] is the outcome of AddVertex(vs[i]); earlier items in the same call count
// as present for later ones.
func (g *Graph) AddVertices(vs []*Vertex) []bool {
	result := make([]bool, len(vs))
	for i, v := range vs {
		result[i] = g.AddVertex(v)
	}

	return result
}

// ContainsVertex reports whether a vertex with the given ID is a member.
// Complexity: O(1).
func (g *Graph) ContainsVertex(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and every edge incident to it (both directions).
//
// Implementation:
//   - Stage 1: Verify membership; absent vertices return false.
//   - Stage 2: Collect incident edge IDs from the out and in indices (self-loops once).
//   - Stage 3: Unlink every incident edge, then drop the vertex and its index buckets.
//   - Stage 4: Run vertex-removed hooks.
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (g *Graph) RemoveVertex(id string) bool {
	if _, exists := g.vertices[id]; !exists {
		return false
	}

	for _, eid := range g.incidentIDs(id) {
		g.unlinkEdge(g.edges[eid])
	}
	delete(g.vertices, id)
	delete(g.out, id)
	delete(g.in, id)

	for _, fn := range g.onVertexRemoved {
		fn(id)
	}

	return true
}

// RemoveVertices removes each vertex independently (with cascade) and reports per-item success.
func (g *Graph) RemoveVertices(ids []string) []bool {
	result := make([]bool, len(ids))
	for i, id := range ids {
		result[i] = g.RemoveVertex(id)
	}

	return result
}

// Vertex returns a copy of the vertex with the given ID, or ErrUnknownVertex.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, unknownVertex(id)
	}

	return v.clone(), nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NumVertices returns the number of owned vertices.
// Complexity: O(1).
func (g *Graph) NumVertices() int { return len(g.vertices) }

// Degree returns the in- and out-degree of id. A self-loop contributes one to each.
//
// Errors:
//   - ErrUnknownVertex if id is not a member.
//
// Complexity:
//   - Time O(number of distinct neighbors), Space O(1).
func (g *Graph) Degree(id string) (in, out int, err error) {
	if _, ok := g.vertices[id]; !ok {
		return 0, 0, unknownVertex(id)
	}
	for _, set := range g.out[id] {
		out += len(set)
	}
	for _, set := range g.in[id] {
		in += len(set)
	}

	return in, out, nil
}
