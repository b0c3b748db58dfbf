package path_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortest/core"
	"github.com/katalvlaran/shortest/path"
)

// chain 1 → 2 → 3, vertex 4 never reached, vertex 5 hangs off the unreached 4.
func sampleParents() []core.Parent {
	return []core.Parent{
		core.SourceParent(),
		core.ParentOf(1),
		core.ParentOf(2),
		{},
		core.ParentOf(4),
	}
}

func TestReconstruct(t *testing.T) {
	parents := sampleParents()

	p, err := path.Reconstruct(parents, 3)
	require.NoError(t, err)
	assert.Equal(t, core.Path{1, 2, 3}, p)

	p, err = path.Reconstruct(parents, 1)
	require.NoError(t, err)
	assert.Equal(t, core.Path{1}, p)
}

func TestReconstruct_Unreachable(t *testing.T) {
	parents := sampleParents()

	_, err := path.Reconstruct(parents, 4)
	assert.ErrorIs(t, err, path.ErrUnreachable)

	// ancestor unvisited
	_, err = path.Reconstruct(parents, 5)
	assert.ErrorIs(t, err, path.ErrUnreachable)
}

func TestReconstruct_OutOfRange(t *testing.T) {
	parents := sampleParents()
	for _, v := range []core.VertexID{0, -1, 6} {
		_, err := path.Reconstruct(parents, v)
		assert.ErrorIs(t, err, path.ErrTargetOutOfRange, "target %d", v)
	}

	_, err := path.Reconstruct(nil, 1)
	assert.ErrorIs(t, err, path.ErrTargetOutOfRange)
}

func TestReconstruct_BrokenChain(t *testing.T) {
	cycle := []core.Parent{core.ParentOf(2), core.ParentOf(1)}
	_, err := path.Reconstruct(cycle, 1)
	assert.ErrorIs(t, err, path.ErrBrokenChain)

	dangling := []core.Parent{core.SourceParent(), core.ParentOf(9)}
	_, err = path.Reconstruct(dangling, 2)
	assert.ErrorIs(t, err, path.ErrBrokenChain)
}

func TestRender(t *testing.T) {
	parents := sampleParents()
	assert.Equal(t, "1 2 3", path.Render(parents, 3))
	assert.Equal(t, path.Unreachable, path.Render(parents, 4))
	assert.Equal(t, path.Unreachable, path.Render(parents, 42))
}

func TestReconstruct_DoesNotMutate(t *testing.T) {
	parents := sampleParents()
	before := append([]core.Parent(nil), parents...)
	for i := 0; i < 3; i++ {
		_, _ = path.Reconstruct(parents, 3)
		_, _ = path.Reconstruct(parents, 5)
	}
	assert.Equal(t, before, parents)
}

func ExampleRender() {
	parents := []core.Parent{core.SourceParent(), core.ParentOf(1), core.ParentOf(2), {}}
	for v := core.VertexID(1); v <= 4; v++ {
		fmt.Printf("%d: %s\n", v, path.Render(parents, v))
	}
	// Output:
	// 1: 1
	// 2: 1 2
	// 3: 1 2 3
	// 4: unreachable
}
