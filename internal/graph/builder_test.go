package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDiamond builds the classic 1->2, 1->3, 2->4, 3->4 diamond, rooted at 1.
func buildDiamond(t *testing.T, simplify bool) *Graph {
	t.Helper()
	b := NewBuilder(4)
	b.AddArc(1, 2)
	b.AddArc(1, 3)
	b.AddArc(2, 4)
	b.AddArc(3, 4)
	return b.Build(1, simplify)
}

func TestBuilderDiamondForwardAdjacency(t *testing.T) {
	g := buildDiamond(t, false)
	require.Equal(t, 4, g.NVertices())
	require.Equal(t, 4, g.NArcs())
	assert.ElementsMatch(t, []int32{2, 3}, g.OutBounds(1))
	assert.ElementsMatch(t, []int32{4}, g.OutBounds(2))
	assert.ElementsMatch(t, []int32{4}, g.OutBounds(3))
	assert.Empty(t, g.OutBounds(4))
}

func TestBuilderDiamondReverseAdjacency(t *testing.T) {
	g := buildDiamond(t, false)
	assert.Empty(t, g.InBounds(1))
	assert.ElementsMatch(t, []int32{1}, g.InBounds(2))
	assert.ElementsMatch(t, []int32{1}, g.InBounds(3))
	assert.ElementsMatch(t, []int32{2, 3}, g.InBounds(4))
}

func TestBuilderDegrees(t *testing.T) {
	g := buildDiamond(t, false)
	assert.Equal(t, 2, g.OutDegree(1))
	assert.Equal(t, 0, g.InDegree(1))
	assert.Equal(t, 2, g.InDegree(4))
	assert.Equal(t, 0, g.OutDegree(4))
}

func TestBuilderOutOfRangeLabelsAreEmpty(t *testing.T) {
	g := buildDiamond(t, false)
	assert.Nil(t, g.OutBounds(0))
	assert.Nil(t, g.OutBounds(5))
	assert.Nil(t, g.InBounds(-1))
}

func TestBuilderSimplifyDropsParallelArcs(t *testing.T) {
	b := NewBuilder(3)
	b.AddArc(1, 2)
	b.AddArc(1, 2) // parallel
	b.AddArc(1, 3)
	b.AddArc(2, 3)

	g := b.Build(1, true)
	assert.Equal(t, 3, g.NArcs())
	assert.ElementsMatch(t, []int32{2, 3}, g.OutBounds(1))
}

func TestBuilderWithoutSimplifyKeepsParallelArcs(t *testing.T) {
	b := NewBuilder(3)
	b.AddArc(1, 2)
	b.AddArc(1, 2)
	b.AddArc(1, 3)

	g := b.Build(1, false)
	assert.Equal(t, 3, g.NArcs())
	assert.ElementsMatch(t, []int32{2, 2, 3}, g.OutBounds(1))
}

func TestGraphReversedSwapsAdjacency(t *testing.T) {
	g := buildDiamond(t, false)
	r := g.Reversed(4)

	assert.Equal(t, 4, r.Source())
	assert.Equal(t, g.NVertices(), r.NVertices())
	assert.Equal(t, g.NArcs(), r.NArcs())

	assert.ElementsMatch(t, g.InBounds(4), r.OutBounds(4))
	assert.ElementsMatch(t, g.OutBounds(1), r.InBounds(1))
}

func TestBuilderUnreachableVertexHasNoArcs(t *testing.T) {
	b := NewBuilder(5)
	b.AddArc(1, 2)
	b.AddArc(2, 3)
	// vertex 5 unreachable from source 1, no arcs at all
	g := b.Build(1, false)
	assert.Empty(t, g.OutBounds(5))
	assert.Empty(t, g.InBounds(5))
}

func TestBuilderNArcsAdded(t *testing.T) {
	b := NewBuilder(3)
	assert.Equal(t, 0, b.NArcsAdded())
	b.AddArc(1, 2)
	b.AddArc(2, 3)
	assert.Equal(t, 2, b.NArcsAdded())
}
