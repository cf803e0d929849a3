// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (incident, in/out edges and neighbor IDs) and adjacency helpers.
// Determinism:
//   - Edge slices are sorted by Edge.ID asc.
//   - Neighbor slices are unique and sorted lex asc.
// Complexity:
//   - Every query is O(d log d) where d is the number of incident edges of the queried vertex.

package core

import (
	"fmt"
	"sort"
)

// IncidentEdges returns every edge with u as source or target. A self-loop appears once.
//
// Errors:
//   - ErrUnknownVertex if u is not a member.
func (g *Graph) IncidentEdges(u string) ([]*Edge, error) {
	if _, ok := g.vertices[u]; !ok {
		return nil, unknownVertex(u)
	}

	return g.edgesByID(g.incidentIDs(u)), nil
}

// EdgesBetween returns all edges u -> v, including parallel edges in a multigraph.
//
// Errors:
//   - ErrUnknownVertex if u or v is not a member.
func (g *Graph) EdgesBetween(u, v string) ([]*Edge, error) {
	if _, ok := g.vertices[u]; !ok {
		return nil, unknownVertex(u)
	}
	if _, ok := g.vertices[v]; !ok {
		return nil, unknownVertex(v)
	}

	ids := make([]string, 0, len(g.out[u][v]))
	for eid := range g.out[u][v] {
		ids = append(ids, eid)
	}

	return g.edgesByID(ids), nil
}

// InEdges returns all edges whose target is v.
func (g *Graph) InEdges(v string) ([]*Edge, error) {
	if _, ok := g.vertices[v]; !ok {
		return nil, unknownVertex(v)
	}

	return g.edgesByID(g.in.edgeIDs(v)), nil
}

// OutEdges returns all edges whose source is u.
func (g *Graph) OutEdges(u string) ([]*Edge, error) {
	if _, ok := g.vertices[u]; !ok {
		return nil, unknownVertex(u)
	}

	return g.edgesByID(g.out.edgeIDs(u)), nil
}

// Neighbors returns the unique IDs adjacent to u in either direction, sorted lex asc.
// A vertex with a self-loop is its own neighbor.
func (g *Graph) Neighbors(u string) ([]string, error) {
	if _, ok := g.vertices[u]; !ok {
		return nil, unknownVertex(u)
	}
	seen := make(map[string]struct{}, len(g.out[u])+len(g.in[u]))
	for v := range g.out[u] {
		seen[v] = struct{}{}
	}
	for v := range g.in[u] {
		seen[v] = struct{}{}
	}

	return sortedKeys(seen), nil
}

// InNeighbors returns the unique sources of edges into v, sorted lex asc.
func (g *Graph) InNeighbors(v string) ([]string, error) {
	if _, ok := g.vertices[v]; !ok {
		return nil, unknownVertex(v)
	}

	return sortedKeys(g.in[v]), nil
}

// OutNeighbors returns the unique targets of edges out of u, sorted lex asc.
func (g *Graph) OutNeighbors(u string) ([]string, error) {
	if _, ok := g.vertices[u]; !ok {
		return nil, unknownVertex(u)
	}

	return sortedKeys(g.out[u]), nil
}

// incidentIDs collects the IDs of edges touching id, deduplicating self-loops.
func (g *Graph) incidentIDs(id string) []string {
	seen := make(map[string]struct{})
	for _, set := range g.out[id] {
		for eid := range set {
			seen[eid] = struct{}{}
		}
	}
	for _, set := range g.in[id] {
		for eid := range set {
			seen[eid] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for eid := range seen {
		ids = append(ids, eid)
	}

	return ids
}

// edgesByID maps IDs to copies of cataloged edges, sorted by ID.
func (g *Graph) edgesByID(ids []string) []*Edge {
	out := make([]*Edge, 0, len(ids))
	for _, eid := range ids {
		if e, ok := g.edges[eid]; ok {
			out = append(out, e.clone())
		}
	}
	sortEdges(out)

	return out
}

func unknownVertex(id string) error {
	return fmt.Errorf("%w: %q", ErrUnknownVertex, id)
}

// add records eid under a[from][to], allocating buckets on demand.
func (a adjacency) add(from, to, eid string) {
	inner := a[from]
	if inner == nil {
		inner = make(map[string]map[string]struct{})
		a[from] = inner
	}
	set := inner[to]
	if set == nil {
		set = make(map[string]struct{})
		inner[to] = set
	}
	set[eid] = struct{}{}
}

// remove deletes eid from a[from][to] and prunes empty buckets.
func (a adjacency) remove(from, to, eid string) {
	inner := a[from]
	set := inner[to]
	if set == nil {
		return
	}
	delete(set, eid)
	if len(set) == 0 {
		delete(inner, to)
	}
	if len(inner) == 0 {
		delete(a, from)
	}
}

// edgeIDs returns every edge ID stored under a[from].
func (a adjacency) edgeIDs(from string) []string {
	var ids []string
	for _, set := range a[from] {
		for eid := range set {
			ids = append(ids, eid)
		}
	}

	return ids
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
