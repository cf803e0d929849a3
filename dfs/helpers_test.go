package dfs_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iglsynth/iglsynth/core"
)

// build creates a graph with the given directed pairs; endpoints are added on demand.
func build(t testing.TB, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		g.AddVertex(core.NewVertex(p[0]))
		g.AddVertex(core.NewVertex(p[1]))
		_, ok, err := g.Connect(p[0], p[1])
		require.NoError(t, err)
		require.True(t, ok)
	}

	return g
}

// buildChain creates N0 -> N1 -> ... -> N(n-1).
func buildChain(t testing.TB, n int) *core.Graph {
	pairs := make([][2]string, 0, n)
	for i := 0; i < n-1; i++ {
		pairs = append(pairs, [2]string{"N" + strconv.Itoa(i), "N" + strconv.Itoa(i+1)})
	}

	return build(t, pairs...)
}
