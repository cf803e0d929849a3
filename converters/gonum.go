// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/iglsynth/iglsynth/core"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned for a nil source graph.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrNameCollision is returned when two gonum nodes map to the same vertex ID.
	ErrNameCollision = errors.New("converters: vertex name collision")
)

// IDMap records the correspondence between vertex/edge IDs and gonum node/line IDs.
type IDMap struct {
	nodes    map[string]int64
	vertices map[int64]string
	edges    map[int64]string // line UID -> edge ID
}

// NodeID returns the gonum node ID of vertex id.
func (m *IDMap) NodeID(id string) (int64, bool) {
	n, ok := m.nodes[id]

	return n, ok
}

// VertexID returns the vertex ID of gonum node n.
func (m *IDMap) VertexID(n int64) (string, bool) {
	id, ok := m.vertices[n]

	return id, ok
}

// EdgeID returns the edge ID carried by the gonum line with the given UID.
func (m *IDMap) EdgeID(uid int64) (string, bool) {
	id, ok := m.edges[uid]

	return id, ok
}

// ToGonum exports g. Every vertex becomes a node and every edge a line, so
// parallel edges and self-loops survive.
//
// Complexity: O(V log V + E log E).
func ToGonum(g *core.Graph) (*multi.DirectedGraph, *IDMap) {
	dg := multi.NewDirectedGraph()
	ids := g.Vertices()
	m := &IDMap{
		nodes:    make(map[string]int64, len(ids)),
		vertices: make(map[int64]string, len(ids)),
		edges:    make(map[int64]string, g.NumEdges()),
	}
	for i, id := range ids {
		n := multi.Node(int64(i))
		dg.AddNode(n)
		m.nodes[id] = n.ID()
		m.vertices[n.ID()] = id
	}
	for _, e := range g.Edges() {
		l := dg.NewLine(dg.Node(m.nodes[e.Source()]), dg.Node(m.nodes[e.Target()]))
		dg.SetLine(l)
		m.edges[l.ID()] = e.ID()
	}

	return dg, m
}

// FromGonum imports src. names maps a node ID to a vertex ID; nil uses the decimal node ID.
// A graph.DirectedMultigraph source yields a multigraph with one edge per line;
// otherwise each ordered node pair with an edge yields one edge.
// opts are applied after the mode chosen from src. Edge IDs follow the
// graph's "e<N>" sequence in ascending (source, target, line) order.
func FromGonum(src graph.Directed, names func(int64) string, opts ...core.GraphOption) (*core.Graph, error) {
	if src == nil {
		return nil, ErrNilGraph
	}
	if names == nil {
		names = func(id int64) string { return strconv.FormatInt(id, 10) }
	}
	mg, isMulti := src.(graph.DirectedMultigraph)
	base := []core.GraphOption{}
	if isMulti {
		base = append(base, core.WithMultigraph())
	}
	g := core.NewGraph(append(base, opts...)...)

	nodes := sortedNodes(src.Nodes())
	for _, n := range nodes {
		if !g.AddVertex(core.NewVertex(names(n.ID()))) {
			return nil, fmt.Errorf("%w: node %d as %q", ErrNameCollision, n.ID(), names(n.ID()))
		}
	}
	for _, u := range nodes {
		for _, v := range sortedNodes(src.From(u.ID())) {
			count := 1
			if isMulti {
				count = len(graph.LinesOf(mg.Lines(u.ID(), v.ID())))
			}
			for i := 0; i < count; i++ {
				if _, _, err := g.Connect(names(u.ID()), names(v.ID())); err != nil {
					return nil, fmt.Errorf("converters: line %d -> %d: %w", u.ID(), v.ID(), err)
				}
			}
		}
	}

	return g, nil
}

// StronglyConnected returns the strongly connected components of g.
// Each component is sorted, and components are ordered by their first vertex.
func StronglyConnected(g *core.Graph) [][]string {
	dg, m := ToGonum(g)
	sccs := topo.TarjanSCC(dg)
	out := make([][]string, 0, len(sccs))
	for _, comp := range sccs {
		ids := vertexIDs(comp, m)
		slices.Sort(ids)
		out = append(out, ids)
	}
	sortByFirst(out)

	return out
}

// SimpleCycles enumerates every elementary directed cycle of g (Johnson's algorithm).
// Cycles are closed ([v0, ..., v0]), rotated to start at their smallest vertex and
// sorted. Parallel edges do not produce duplicate cycles.
func SimpleCycles(g *core.Graph) [][]string {
	dg, m := ToGonum(g)
	cycles := topo.DirectedCyclesIn(dg)
	seen := make(map[string]struct{}, len(cycles))
	out := make([][]string, 0, len(cycles))
	for _, c := range cycles {
		ids := vertexIDs(c[:len(c)-1], m)
		ids = rotateToMin(ids)
		ids = append(ids, ids[0])
		sig := fmt.Sprint(ids)
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		out = append(out, ids)
	}
	slices.SortFunc(out, func(a, b []string) int { return slices.Compare(a, b) })

	return out
}

func sortedNodes(it graph.Nodes) []graph.Node {
	nodes := graph.NodesOf(it)
	slices.SortFunc(nodes, func(a, b graph.Node) int {
		switch {
		case a.ID() < b.ID():
			return -1
		case a.ID() > b.ID():
			return 1
		}
		return 0
	})

	return nodes
}

func vertexIDs(nodes []graph.Node, m *IDMap) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = m.vertices[n.ID()]
	}

	return ids
}

// rotateToMin rotates a cycle without repeated vertices to start at its smallest element.
func rotateToMin(ids []string) []string {
	k := 0
	for i := range ids {
		if ids[i] < ids[k] {
			k = i
		}
	}
	out := make([]string, 0, len(ids)+1)

	return append(append(out, ids[k:]...), ids[:k]...)
}

func sortByFirst(comps [][]string) {
	slices.SortFunc(comps, func(a, b []string) int {
		switch {
		case a[0] < b[0]:
			return -1
		case a[0] > b[0]:
			return 1
		}
		return 0
	})
}
