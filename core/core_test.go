package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortest/core"
)

func TestNewAdjacency_Negative(t *testing.T) {
	_, err := core.NewAdjacency(-1)
	require.ErrorIs(t, err, core.ErrNegativeVertexCount)

	_, err = core.NewAdjacency(core.MaxVertexCount + 1)
	require.ErrorIs(t, err, core.ErrTooManyVertices)
}

func TestAdjacency_AddEdgeKeepsParallelEdgesInOrder(t *testing.T) {
	adj, err := core.NewAdjacency(3)
	require.NoError(t, err)

	require.NoError(t, adj.AddEdge(1, 2, 5))
	require.NoError(t, adj.AddEdge(1, 2, 3)) // parallel, not merged
	require.NoError(t, adj.AddEdge(1, 3, 9))
	require.NoError(t, adj.AddEdge(2, 2, 1)) // self-loop stored verbatim

	assert.Equal(t, []core.Arc{{To: 2, Weight: 5}, {To: 2, Weight: 3}, {To: 3, Weight: 9}}, adj.Arcs(1))
	assert.Equal(t, []core.Arc{{To: 2, Weight: 1}}, adj.Arcs(2))
	assert.Empty(t, adj.Arcs(3))
	assert.Equal(t, 4, adj.EdgeCount())
	assert.Equal(t, 3, adj.VertexCount())
}

func TestAdjacency_RejectsOutOfRange(t *testing.T) {
	adj, err := core.NewAdjacency(2)
	require.NoError(t, err)

	require.ErrorIs(t, adj.AddEdge(0, 1, 1), core.ErrVertexOutOfRange)
	require.ErrorIs(t, adj.AddEdge(1, 3, 1), core.ErrVertexOutOfRange)
	assert.Zero(t, adj.EdgeCount())
	assert.Nil(t, adj.Arcs(7))
}

func TestAdjacency_Freeze(t *testing.T) {
	adj, err := core.NewAdjacency(2)
	require.NoError(t, err)
	require.NoError(t, adj.AddEdge(1, 2, 1))

	adj.Freeze()
	assert.True(t, adj.Frozen())
	require.ErrorIs(t, adj.AddEdge(2, 1, 1), core.ErrFrozen)
}

func TestAdjacency_EdgesOrderedBySource(t *testing.T) {
	adj, err := core.NewAdjacency(3)
	require.NoError(t, err)
	require.NoError(t, adj.AddEdge(3, 1, 7))
	require.NoError(t, adj.AddEdge(1, 3, 2))
	require.NoError(t, adj.AddEdge(1, 2, 4))

	want := []core.Edge{
		{From: 1, To: 3, Weight: 2},
		{From: 1, To: 2, Weight: 4},
		{From: 3, To: 1, Weight: 7},
	}
	assert.Equal(t, want, adj.Edges())
}

func TestParent_Legacy(t *testing.T) {
	assert.Equal(t, core.LegacyUnvisited, core.Parent{}.Legacy())
	assert.Equal(t, core.LegacySource, core.SourceParent().Legacy())
	assert.Equal(t, 4, core.ParentOf(4).Legacy())

	assert.Equal(t, "unvisited", core.Parent{}.String())
	assert.Equal(t, "source", core.SourceParent().String())
	assert.Equal(t, "parent(4)", core.ParentOf(4).String())
}

func TestPath_String(t *testing.T) {
	assert.Equal(t, "1 2 3", core.Path{1, 2, 3}.String())
	assert.Equal(t, "", core.Path{}.String())
	assert.Equal(t, []int{1, 4}, core.Path{1, 4}.Ints())
}

func TestSaturatingAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{"small", 2, 3, 5},
		{"zero weight on infinity", core.Infinity, 0, core.Infinity},
		{"infinity plus weight", core.Infinity, 7, core.Infinity},
		{"near the top", core.Infinity - 5, 5, core.Infinity},
		{"just below", core.Infinity - 5, 4, core.Infinity - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, core.SaturatingAdd(tt.a, tt.b))
		})
	}
}
