package builder_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iglsynth/iglsynth/builder"
	"github.com/iglsynth/iglsynth/core"
)

func build(t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, cons...)
	require.NoError(t, err)

	return g
}

func pairs(g *core.Graph) [][2]string {
	var out [][2]string
	for _, e := range g.Edges() {
		out = append(out, [2]string{e.Source(), e.Target()})
	}

	return out
}

func TestPath(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(4))
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}}, pairs(g))
	assert.True(t, g.ContainsEdge("e1"))
	assert.True(t, g.ContainsEdge("e3"))
}

func TestCycle(t *testing.T) {
	g := build(t, nil, builder.Cycle(3))
	assert.Equal(t, 3, g.NumEdges())
	assert.True(t, g.ContainsEdgeBetween("2", "0"))

	two := build(t, nil, builder.Cycle(2))
	assert.True(t, two.ContainsEdgeBetween("0", "1"))
	assert.True(t, two.ContainsEdgeBetween("1", "0"))
}

func TestStar(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSymbNumb("leaf")}, builder.Star(4))
	assert.Equal(t, 4, g.NumVertices())
	out, err := g.OutNeighbors(builder.StarCenterID)
	require.NoError(t, err)
	assert.Equal(t, []string{"leaf0", "leaf1", "leaf2"}, out)
}

func TestComplete(t *testing.T) {
	g := build(t, nil, builder.Complete(4))
	assert.Equal(t, 12, g.NumEdges())
	assert.Zero(t, g.Stats().SelfLoopCount)

	single := build(t, nil, builder.Complete(1))
	assert.Equal(t, 1, single.NumVertices())
	assert.Zero(t, single.NumEdges())
}

func TestSymmetricAndWeights(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSymmetric(), builder.WithConstantWeight(2.5), builder.WithEdgeLabel("go")},
		builder.Path(3))
	assert.Equal(t, 4, g.NumEdges())
	assert.True(t, g.ContainsEdgeBetween("1", "0"))
	for _, e := range g.Edges() {
		assert.Equal(t, 2.5, e.Weight)
		assert.Equal(t, "go", e.Label)
	}

	// Mirrored 2-cycle edges are parallel, rejected by a simple graph.
	_, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymmetric()}, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	multi, err := builder.BuildGraph([]core.GraphOption{core.WithMultigraph()},
		[]builder.BuilderOption{builder.WithSymmetric()}, builder.Cycle(2))
	require.NoError(t, err)
	assert.Equal(t, 4, multi.NumEdges())
}

func TestRandomSparse(t *testing.T) {
	a := build(t, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(10, 0.3))
	b := build(t, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(10, 0.3))
	assert.Equal(t, pairs(a), pairs(b))

	full := build(t, []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(1)))}, builder.RandomSparse(5, 1))
	assert.Equal(t, 20, full.NumEdges())
	empty := build(t, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(5, 0))
	assert.Zero(t, empty.NumEdges())

	rnd := func(r *rand.Rand) float64 { return r.Float64() }
	w := build(t, []builder.BuilderOption{builder.WithSeed(3), builder.WithWeightFn(rnd)}, builder.RandomSparse(4, 1))
	for _, e := range w.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 0.0)
		assert.Less(t, e.Weight, 1.0)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name  string
		gopts []core.GraphOption
		bopts []builder.BuilderOption
		cons  []builder.Constructor
		want  error
	}{
		{"path_small", nil, nil, []builder.Constructor{builder.Path(1)}, builder.ErrTooFewVertices},
		{"cycle_small", nil, nil, []builder.Constructor{builder.Cycle(1)}, builder.ErrTooFewVertices},
		{"star_small", nil, nil, []builder.Constructor{builder.Star(1)}, builder.ErrTooFewVertices},
		{"complete_small", nil, nil, []builder.Constructor{builder.Complete(0)}, builder.ErrTooFewVertices},
		{"random_p", nil, []builder.BuilderOption{builder.WithSeed(1)}, []builder.Constructor{builder.RandomSparse(3, 1.5)}, builder.ErrInvalidProbability},
		{"random_rng", nil, nil, []builder.Constructor{builder.RandomSparse(3, 0.5)}, builder.ErrNeedRandSource},
		{"collision", nil, nil, []builder.Constructor{builder.Path(2), builder.Path(3)}, builder.ErrConstructFailed},
		{"nil_constructor", nil, nil, []builder.Constructor{nil}, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.gopts, tc.bopts, tc.cons...)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestApply_OnExistingGraph(t *testing.T) {
	g := core.NewGraph(core.WithoutLoops())
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithSymbNumb("s")}, builder.Cycle(3)))
	assert.Equal(t, []string{"s0", "s1", "s2"}, g.Vertices())

	err := builder.Apply(nil, nil, builder.Path(2))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.NotPanics(t, func() { builder.WithIDScheme(nil) })
}
