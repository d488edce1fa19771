package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanmst/core"
)

// buildTriangle returns the three-vertex triangle used across the
// engine's tests: 0-1(1), 1-2(2), 0-2(3).
func buildTriangle() *core.WeightedGraph {
	g := core.NewWeightedGraph(3, 3)
	g.SetEdge(0, 0, 1, 1)
	g.SetEdge(1, 1, 2, 2)
	g.SetEdge(2, 0, 2, 3)

	return g
}

// TestNewWeightedGraph_FlatLayout checks the 3·E invariant and the
// negative-edge-count clamp.
func TestNewWeightedGraph_FlatLayout(t *testing.T) {
	g := core.NewWeightedGraph(4, 5)
	require.Equal(t, 4, g.Vertices)
	require.Equal(t, 5, g.Edges)
	require.Len(t, g.EdgeList, 5*core.EdgeMembers)

	// NewWeightedGraph(v, v-1) with v == 0 must not panic.
	empty := core.NewWeightedGraph(0, -1)
	assert.Zero(t, empty.Edges)
	assert.Empty(t, empty.EdgeList)
}

// TestEdgeRoundTrip verifies SetEdge and Edge agree on the flat layout.
func TestEdgeRoundTrip(t *testing.T) {
	g := buildTriangle()
	e := g.Edge(1)
	assert.Equal(t, core.Edge{From: 1, To: 2, Weight: 2}, e)

	g.SetEdge(1, 2, 3, 42)
	assert.Equal(t, core.Edge{From: 2, To: 3, Weight: 42}, g.Edge(1))
	// Neighboring triples stay untouched.
	assert.Equal(t, core.Edge{From: 0, To: 1, Weight: 1}, g.Edge(0))
	assert.Equal(t, core.Edge{From: 0, To: 2, Weight: 3}, g.Edge(2))
}

// TestTotalWeight sums the triangle and confirms a zero-weight sentinel
// edge does not disturb the total.
func TestTotalWeight(t *testing.T) {
	g := buildTriangle()
	assert.Equal(t, int64(6), g.TotalWeight())

	withSentinel := core.NewWeightedGraph(3, 3)
	withSentinel.SetEdge(0, 0, 0, 0) // synthetic root sentinel
	withSentinel.SetEdge(1, 1, 0, 1)
	withSentinel.SetEdge(2, 2, 1, 2)
	assert.Equal(t, int64(3), withSentinel.TotalWeight())
}

// TestClone_Independence mutates the clone and checks the original is
// unaffected.
func TestClone_Independence(t *testing.T) {
	g := buildTriangle()
	clone := g.Clone()
	clone.SetEdge(0, 9, 9, 9)

	assert.Equal(t, core.Edge{From: 0, To: 1, Weight: 1}, g.Edge(0))
	assert.Equal(t, core.Edge{From: 9, To: 9, Weight: 9}, clone.Edge(0))
}

// TestCopyEdge copies a triple between flat lists.
func TestCopyEdge(t *testing.T) {
	src := []int32{7, 8, 9}
	dst := make([]int32, core.EdgeMembers)
	core.CopyEdge(dst, src)
	assert.Equal(t, src, dst)
}

// TestString_Format pins the tab-separated verbose format.
func TestString_Format(t *testing.T) {
	g := core.NewWeightedGraph(2, 1)
	g.SetEdge(0, 0, 1, 5)
	assert.Equal(t, "0\t1\t5\t\n", g.String())
}
