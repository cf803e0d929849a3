// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Connect/RemoveEdge/ContainsEdge/Edge/Edges/NumEdges,
//       filtered removal and nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic ("e" + decimal) and skips IDs already taken.
// Failure policy:
//   - Expected outcomes (duplicate edge, absent edge) are reported as false.
//   - Structural violations (nil edge, dangling endpoint, forbidden loop) are errors.
//   - A failed call never mutates the graph.

package core

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix of Connect-generated edge IDs ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge inserts a copy of e.
//
// Steps:
//  1. Reject nil (ErrNilEdge).
//  2. Both endpoints must be members (ErrDanglingEndpoint).
//  3. Reject self-loops when loops are disabled (ErrLoopNotAllowed).
//  4. An edge with the same ID already present ⇒ false.
//  5. In simple mode, an existing edge source -> target ⇒ false.
//  6. Store and index under out[source][target] and in[target][source].
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph) AddEdge(e *Edge) (bool, error) {
	if e.IsNil() {
		return false, ErrNilEdge
	}
	if err := g.checkEndpoints(e.source, e.target); err != nil {
		g.logger.Debug("core: edge rejected", "graph", g.id, "edge", e.id,
			"source", e.source, "target", e.target, "reason", err.Error())
		return false, fmt.Errorf("add edge %q: %w", e.id, err)
	}
	if e.IsLoop() && !g.allowLoops {
		return false, fmt.Errorf("add edge %q on %q: %w", e.id, e.source, ErrLoopNotAllowed)
	}
	if _, exists := g.edges[e.id]; exists {
		g.logger.Debug("core: edge rejected", "graph", g.id, "edge", e.id, "reason", "duplicate id")
		return false, nil
	}
	if !g.multigraph && len(g.out[e.source][e.target]) > 0 {
		g.logger.Debug("core: edge rejected", "graph", g.id, "edge", e.id,
			"source", e.source, "target", e.target, "reason", "parallel edge in simple graph")
		return false, nil
	}

	g.linkEdge(e.clone())

	return true, nil
}

// AddEdges adds each edge independently and reports per-item success.
// Structural failures of individual items are joined into the returned error;
// items that succeeded stay added.
func (g *Graph) AddEdges(es []*Edge) ([]bool, error) {
	result := make([]bool, len(es))
	var errs []error
	for i, e := range es {
		ok, err := g.AddEdge(e)
		if err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, err))
		}
		result[i] = ok
	}

	return result, errors.Join(errs...)
}

// Connect creates and adds an edge source -> target in one step.
// Unless WithEdgeID is given, the edge ID comes from the graph's "e<N>" sequence.
// Returns the edge ID and whether it was added, with AddEdge's failure policy.
// A rejected edge does not consume a sequence number.
func (g *Graph) Connect(source, target string, opts ...EdgeOption) (string, bool, error) {
	e := &Edge{source: source, target: target}
	for _, opt := range opts {
		opt(e)
	}
	seq := g.nextEdgeID
	if e.id == "" {
		e.id = nextEdgeID(g)
	}
	ok, err := g.AddEdge(e)
	if !ok {
		g.nextEdgeID = seq
	}

	return e.id, ok, err
}

// ContainsEdge reports whether an edge with the given ID is a member.
// Complexity: O(1).
func (g *Graph) ContainsEdge(id string) bool {
	_, ok := g.edges[id]

	return ok
}

// ContainsEdgeBetween reports whether at least one edge source -> target exists.
// Complexity: O(1).
func (g *Graph) ContainsEdgeBetween(source, target string) bool {
	return len(g.out[source][target]) > 0
}

// RemoveEdge deletes one edge; vertices are untouched. Absent edges return false.
// Complexity: O(1).
func (g *Graph) RemoveEdge(id string) bool {
	e, ok := g.edges[id]
	if !ok {
		return false
	}
	g.unlinkEdge(e)

	return true
}

// RemoveEdges removes each edge independently and reports per-item success.
func (g *Graph) RemoveEdges(ids []string) []bool {
	result := make([]bool, len(ids))
	for i, id := range ids {
		result[i] = g.RemoveEdge(id)
	}

	return result
}

// Edge returns a copy of the edge with the given ID, or ErrEdgeNotFound.
func (g *Graph) Edge(id string) (*Edge, error) {
	e, ok := g.edges[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEdgeNotFound, id)
	}

	return e.clone(), nil
}

// Edges returns copies of all edges sorted by Edge.ID asc.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e.clone())
	}
	sortEdges(out)

	return out
}

// NumEdges returns the number of owned edges.
// Complexity: O(1).
func (g *Graph) NumEdges() int { return len(g.edges) }

// FilterEdges removes every edge for which keep returns false and reports how many were removed.
// keep receives a copy of each edge and must not mutate the graph.
// Complexity: O(E).
func (g *Graph) FilterEdges(keep func(*Edge) bool) int {
	var drop []*Edge
	for _, e := range g.edges {
		if !keep(e.clone()) {
			drop = append(drop, e)
		}
	}
	for _, e := range drop {
		g.unlinkEdge(e)
	}

	return len(drop)
}

// checkEndpoints verifies both endpoints are members.
func (g *Graph) checkEndpoints(source, target string) error {
	_, okS := g.vertices[source]
	_, okT := g.vertices[target]
	switch {
	case !okS && !okT:
		return fmt.Errorf("%w: source %q and target %q", ErrDanglingEndpoint, source, target)
	case !okS:
		return fmt.Errorf("%w: source %q", ErrDanglingEndpoint, source)
	case !okT:
		return fmt.Errorf("%w: target %q", ErrDanglingEndpoint, target)
	}

	return nil
}

// linkEdge stores e in the catalog and both adjacency indices.
func (g *Graph) linkEdge(e *Edge) {
	g.edges[e.id] = e
	g.out.add(e.source, e.target, e.id)
	g.in.add(e.target, e.source, e.id)
}

// unlinkEdge removes e from the catalog and both adjacency indices.
func (g *Graph) unlinkEdge(e *Edge) {
	delete(g.edges, e.id)
	g.out.remove(e.source, e.target, e.id)
	g.in.remove(e.target, e.source, e.id)
}

// nextEdgeID returns the next unused textual edge ID ("e1", "e2", ...).
//
// Determinism:
//   - Uses the monotonic counter g.nextEdgeID; no locale, time or randomness.
//   - IDs already taken by caller-supplied edges are skipped.
func nextEdgeID(g *Graph) string {
	for {
		g.nextEdgeID++
		buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
		buf = append(buf, edgeIDPrefix)
		buf = strconv.AppendUint(buf, g.nextEdgeID, 10)
		if id := string(buf); !g.ContainsEdge(id) {
			return id
		}
	}
}

func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].id < es[j].id })
}
