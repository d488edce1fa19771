package mst

import (
	"github.com/katalvlaran/spanmst/cluster"
	"github.com/katalvlaran/spanmst/core"
	"github.com/katalvlaran/spanmst/minheap"
)

// PrimBinary computes the MST on rank 0 by growing the tree from
// vertex 0 with the indexed binary min-heap. Other ranks are no-ops
// returning an empty graph.
// Complexity: O(E log V) time, O(V + E) memory, rank 0 only.
func PrimBinary(cl *cluster.Cluster, g *core.WeightedGraph) (*core.WeightedGraph, error) {
	if cl.Rank() != 0 {
		return core.NewWeightedGraph(0, 0), nil
	}

	return prim(g, minheap.NewBinaryMinHeap(g.Vertices))
}

// PrimFibonacci computes the MST on rank 0 by growing the tree from
// vertex 0 with the Fibonacci min-heap, whose amortized O(1)
// decrease-key trades the binary heap's O(log V) bound for pointer
// bookkeeping. Other ranks are no-ops returning an empty graph.
// Complexity: O(E + V log V) time, O(V + E) memory, rank 0 only.
func PrimFibonacci(cl *cluster.Cluster, g *core.WeightedGraph) (*core.WeightedGraph, error) {
	if cl.Rank() != 0 {
		return core.NewWeightedGraph(0, 0), nil
	}

	return prim(g, minheap.NewFibonacciMinHeap(g.Vertices))
}

// prim is the scan both variants share; only the heap differs.
//
// Steps:
//  1. Build the adjacency list from the edge list.
//  2. Seed the heap with every vertex at (via, weight) =
//     (MaxWeight, MaxWeight), then decrease vertex 0 to (0, 0).
//  3. Repeatedly pop the minimum (v, via, w), record it as the next
//     MST entry, and decrease every neighbor of v through the
//     adjacency list.
//
// The first popped entry is the synthetic root sentinel (0, 0, 0) and
// is recorded as entry 0, so the result holds V entries whose weight
// total still equals the MST weight.
func prim(g *core.WeightedGraph, heap minheap.Interface) (*core.WeightedGraph, error) {
	if g.Vertices == 0 {
		return core.NewWeightedGraph(0, 0), nil
	}

	list := core.NewAdjacencyList(g)
	for i := 0; i < g.Edges; i++ {
		e := g.Edge(i)
		list.Push(e.From, e.To, e.Weight)
	}

	for v := 0; v < g.Vertices; v++ {
		heap.Push(int32(v), core.MaxWeight, core.MaxWeight)
	}

	result := core.NewWeightedGraph(g.Vertices, g.Vertices)

	// Start the scan at vertex 0.
	heap.Decrease(0, 0, 0)
	for i := 0; heap.Len() > 0; i++ {
		item, _ := heap.Pop()
		result.SetEdge(i, item.Vertex, item.Via, item.Weight)

		for _, arc := range list.Arcs(item.Vertex) {
			heap.Decrease(arc.Vertex, item.Vertex, arc.Weight)
		}
	}

	return result, nil
}
