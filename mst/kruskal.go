package mst

import (
	"github.com/katalvlaran/spanmst/cluster"
	"github.com/katalvlaran/spanmst/core"
	"github.com/katalvlaran/spanmst/dsu"
	"github.com/katalvlaran/spanmst/edgesort"
)

// Kruskal computes the MST by sorting all edges across the cluster and
// selecting on rank 0.
//
// Steps:
//  1. All ranks enter the parallel sort; afterwards rank 0 holds the
//     edge list in ascending weight order.
//  2. Rank 0 scans the sorted edges with a disjoint set over V
//     vertices: an edge whose endpoints live in different components
//     joins the MST and unions them.
//  3. The scan stops once V-1 edges are selected or the list is
//     exhausted, so the MST edges come out in ascending weight order.
//
// Other ranks return an empty graph after the sort phase.
// Complexity: O(E log E / P + E α(V)) time on rank 0, O(V + E) memory.
func Kruskal(cl *cluster.Cluster, g *core.WeightedGraph) (*core.WeightedGraph, error) {
	if err := edgesort.Sort(cl, g); err != nil {
		return nil, err
	}
	if cl.Rank() != 0 {
		return core.NewWeightedGraph(0, 0), nil
	}

	set := dsu.NewSet(g.Vertices)
	result := core.NewWeightedGraph(g.Vertices, g.Vertices-1)

	edgesMST := 0
	for currentEdge := 0; edgesMST < g.Vertices-1 && currentEdge < g.Edges; currentEdge++ {
		e := g.Edge(currentEdge)
		canonicalFrom := set.FindSet(e.From)
		canonicalTo := set.FindSet(e.To)
		if canonicalFrom == canonicalTo {
			// The edge would close a cycle.
			continue
		}

		result.SetEdge(edgesMST, e.From, e.To, e.Weight)
		set.UnionSet(canonicalFrom, canonicalTo)
		edgesMST++
	}

	return result, nil
}
