package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iglsynth/iglsynth/dfs"
)

func TestDetectCycles_Nil(t *testing.T) {
	has, cycles, err := dfs.DetectCycles(nil)
	assert.NoError(t, err)
	assert.False(t, has)
	assert.Nil(t, cycles)
}

func TestDetectCycles_Acyclic(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"B", "D"}, [2]string{"A", "D"})
	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.False(t, has)
	assert.Empty(t, cycles)
}

func TestDetectCycles_TwoNode(t *testing.T) {
	g := build(t, [2]string{"B", "A"}, [2]string{"A", "B"})
	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "B", "A"}}, cycles)
}

func TestDetectCycles_RotationAndSelfLoop(t *testing.T) {
	// C -> A -> B -> C, plus a loop on D
	g := build(t, [2]string{"C", "A"}, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"D", "D"})
	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "B", "C", "A"}, {"D", "D"}}, cycles)
}

func TestDetectCycles_Disjoint(t *testing.T) {
	g := build(t,
		[2]string{"X", "Y"}, [2]string{"Y", "X"},
		[2]string{"P", "Q"}, [2]string{"Q", "R"}, [2]string{"R", "P"})
	_, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"P", "Q", "R", "P"}, {"X", "Y", "X"}}, cycles)
}
