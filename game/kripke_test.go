// SPDX-License-Identifier: MIT

package game_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iglsynth/iglsynth/codec"
	"github.com/iglsynth/iglsynth/core"
	"github.com/iglsynth/iglsynth/entity"
	"github.com/iglsynth/iglsynth/game"
)

// traffic returns a three-state light: red -> green -> yellow -> red, plus an
// unreachable "off" state with no transitions.
func traffic(t *testing.T) *game.Kripke {
	t.Helper()
	k := game.NewKripke([]string{"stop", "go", "stop", ""}, core.WithID("light"))
	for _, s := range []string{"red", "green", "yellow", "off"} {
		require.True(t, k.AddVertex(core.NewVertex(s)))
	}
	tick := game.NewAction("tick", "")
	for _, p := range [][2]string{{"red", "green"}, {"green", "yellow"}, {"yellow", "red"}} {
		_, ok, err := k.AddTransition(p[0], p[1], tick)
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.NoError(t, k.Label("red", "stop"))
	require.NoError(t, k.Label("yellow", "stop"))
	require.NoError(t, k.Label("green", "go"))
	require.NoError(t, k.Initialize("red"))

	return k
}

func TestKripke_Basics(t *testing.T) {
	k := traffic(t)
	assert.Equal(t, "<Kripke object with id=light>", k.String())
	assert.Equal(t, []string{"go", "stop"}, k.Alphabet())
	assert.Equal(t, 4, k.NumVertices())
	assert.Equal(t, 3, k.NumEdges())

	labels, err := k.Labels("red")
	require.NoError(t, err)
	assert.Equal(t, []string{"stop"}, labels)
	assert.Equal(t, []string{"red", "yellow"}, k.StatesWith("stop"))
	assert.Equal(t, []string{"red"}, k.InitialStates())

	e, err := k.Edge("e1")
	require.NoError(t, err)
	assert.Equal(t, "tick", e.Label)
}

func TestKripke_LabelErrors(t *testing.T) {
	k := traffic(t)
	assert.ErrorIs(t, k.Label("nowhere", "go"), core.ErrUnknownVertex)
	assert.ErrorIs(t, k.Label("red", "go", "blink"), game.ErrUnknownProposition)

	labels, _ := k.Labels("red")
	assert.Equal(t, []string{"stop"}, labels, "failed Label must not change anything")

	_, err := k.Labels("nowhere")
	assert.ErrorIs(t, err, core.ErrUnknownVertex)

	assert.ErrorIs(t, k.Initialize("red", "nowhere"), core.ErrUnknownVertex)
	assert.Equal(t, []string{"red"}, k.InitialStates())
}

func TestKripke_LeftTotalAndReachable(t *testing.T) {
	k := traffic(t)
	assert.False(t, k.IsLeftTotal(), "off has no successor")

	reach, err := k.Reachable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"green", "red", "yellow"}, reach)

	_, _, err = k.Connect("off", "off")
	require.NoError(t, err)
	assert.True(t, k.IsLeftTotal())
	assert.True(t, game.NewKripke(nil).IsLeftTotal())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = k.Reachable(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKripke_RemoveStateDropsAnnotations(t *testing.T) {
	k := traffic(t)
	require.True(t, k.RemoveVertex("red"))

	assert.Empty(t, k.InitialStates())
	assert.Equal(t, []string{"yellow"}, k.StatesWith("stop"))
	assert.Equal(t, 1, k.NumEdges())

	// A re-added state starts unlabelled.
	k.AddVertex(core.NewVertex("red"))
	labels, err := k.Labels("red")
	require.NoError(t, err)
	assert.Empty(t, labels)

	k.Clear()
	assert.Equal(t, 0, k.NumVertices())
	assert.Empty(t, k.StatesWith("stop"))
	assert.Equal(t, []string{"go", "stop"}, k.Alphabet())
}

func TestKripke_RoundTrip(t *testing.T) {
	k := traffic(t)
	for _, f := range codec.Formats() {
		t.Run(string(f), func(t *testing.T) {
			data, err := game.Marshal(k, f)
			require.NoError(t, err)
			back, err := game.Unmarshal(data, f)
			require.NoError(t, err)
			assert.Equal(t, k.Serialize(), back.Serialize())

			// The reconstructed structure keeps its removal hook.
			back.RemoveVertex("red")
			assert.Empty(t, back.InitialStates())
		})
	}
}

func TestKripke_MalformedRecords(t *testing.T) {
	cases := map[string]func(r *game.KripkeRecord){
		"class":             func(r *game.KripkeRecord) { r.ClassName = core.GraphClass },
		"graph id mismatch": func(r *game.KripkeRecord) { r.Graph.ID = "other" },
		"label on unknown":  func(r *game.KripkeRecord) { r.Labels["ghost"] = []string{"go"} },
		"label outside":     func(r *game.KripkeRecord) { r.Labels["red"] = []string{"blink"} },
		"initial unknown":   func(r *game.KripkeRecord) { r.InitialStates = []string{"ghost"} },
		"graph dangling":    func(r *game.KripkeRecord) { r.Graph.Edges[0].TargetID = "ghost" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			rec := traffic(t).Serialize()
			mutate(&rec)
			_, err := game.KripkeFromRecord(rec)
			assert.ErrorIs(t, err, entity.ErrMalformedData)
		})
	}
}
