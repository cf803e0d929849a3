// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iglsynth/iglsynth/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// vertices builds one Vertex per id.
func vertices(ids ...string) []*core.Vertex {
	out := make([]*core.Vertex, len(ids))
	for i, id := range ids {
		out[i] = core.NewVertex(id)
	}

	return out
}

// mustConnect adds source -> target and fails the test unless the edge was added.
func mustConnect(t *testing.T, g *core.Graph, source, target string, opts ...core.EdgeOption) string {
	t.Helper()
	id, ok, err := g.Connect(source, target, opts...)
	require.NoError(t, err, "Connect(%s,%s)", source, target)
	require.True(t, ok, "Connect(%s,%s) must add an edge", source, target)

	return id
}

// newPath returns a graph A -> B -> C (edges e1, e2).
func newPath(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	g.AddVertices(vertices(VertexA, VertexB, VertexC))
	mustConnect(t, g, VertexA, VertexB)
	mustConnect(t, g, VertexB, VertexC)

	return g
}

// edgeIDs extracts edge IDs preserving order.
func edgeIDs(es []*core.Edge) []string {
	ids := make([]string, len(es))
	for i, e := range es {
		ids[i] = e.ID()
	}

	return ids
}
