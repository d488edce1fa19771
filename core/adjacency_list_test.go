package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanmst/core"
)

// TestAdjacencyList_BothDirections pushes the triangle and checks both
// half-edges land in the right lists, in push order.
func TestAdjacencyList_BothDirections(t *testing.T) {
	g := buildTriangle()
	list := core.NewAdjacencyList(g)
	for i := 0; i < g.Edges; i++ {
		e := g.Edge(i)
		list.Push(e.From, e.To, e.Weight)
	}

	require.Equal(t, 3, list.Len())
	assert.Equal(t, []core.Arc{{Vertex: 1, Weight: 1}, {Vertex: 2, Weight: 3}}, list.Arcs(0))
	assert.Equal(t, []core.Arc{{Vertex: 0, Weight: 1}, {Vertex: 2, Weight: 2}}, list.Arcs(1))
	assert.Equal(t, []core.Arc{{Vertex: 1, Weight: 2}, {Vertex: 0, Weight: 3}}, list.Arcs(2))
}

// TestAdjacencyList_HalfEdgeCount verifies Σ|list[v]| == 2·E on a
// denser graph, exercising growth past the initial capacity.
func TestAdjacencyList_HalfEdgeCount(t *testing.T) {
	const vertices = 6
	g := core.NewWeightedGraph(vertices, 0)
	list := core.NewAdjacencyList(g)

	// Star around vertex 0 plus a cycle: 10 edges total, so vertex 0
	// collects more arcs than the initial capacity of 4.
	edges := 0
	for v := int32(1); v < vertices; v++ {
		list.Push(0, v, v)
		edges++
	}
	for v := int32(1); v < vertices; v++ {
		next := v%(vertices-1) + 1
		list.Push(v, next, 10+v)
		edges++
	}

	total := 0
	for v := int32(0); v < vertices; v++ {
		total += len(list.Arcs(v))
	}
	assert.Equal(t, 2*edges, total)
	assert.Len(t, list.Arcs(0), 5)
}
