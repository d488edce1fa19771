package mst

import (
	"github.com/katalvlaran/spanmst/cluster"
	"github.com/katalvlaran/spanmst/core"
	"github.com/katalvlaran/spanmst/dsu"
	"github.com/katalvlaran/spanmst/edgesort"
)

// Boruvka computes the MST in parallel rounds of closest-edge
// selection. Every rank participates.
//
// Per round:
//  1. Reset the per-component closest-edge array (weight MaxWeight).
//  2. Scan the local edge chunk: an edge joining two components is
//     installed as the closest edge of both canonical endpoints when
//     it strictly undercuts the stored weight (ties keep the
//     incumbent, so the element-wise min reduce stays associative).
//  3. Combine the per-rank arrays by recursive-doubling element-wise
//     min; rank 0 then broadcasts the global result.
//  4. Every rank walks the combined array and unions the surviving
//     edges into its own disjoint-set replica, all replicas moving in
//     lockstep; rank 0 additionally records the edges in the MST.
//
// The outer loop runs at most ceil(log2 V) rounds and stops early once
// V-1 edges are selected.
// Complexity: O((E/P) α(V) log V) scan work per rank plus
// O(V log V log P) reduce traffic.
func Boruvka(cl *cluster.Cluster, g *core.WeightedGraph) (*core.WeightedGraph, error) {
	rank, size := cl.Rank(), cl.Size()
	parallel := size != 1

	// Announce the graph dimensions.
	var header []int32
	if rank == 0 {
		header = []int32{int32(g.Edges), int32(g.Vertices)}
	}
	header, err := cl.Broadcast(0, header)
	if err != nil {
		return nil, err
	}
	edges, vertices := int(header[0]), int(header[1])

	// Distribute the edge chunks.
	var part []int32
	partEdges := edges
	if parallel {
		part, partEdges, err = edgesort.ScatterEdgeList(cl, g.EdgeList, edges)
		if err != nil {
			return nil, err
		}
	} else {
		part = g.EdgeList
	}

	set := dsu.NewSet(vertices)
	result := core.NewWeightedGraph(0, 0)
	if rank == 0 {
		result = core.NewWeightedGraph(vertices, vertices-1)
	}

	closest := make([]int32, vertices*core.EdgeMembers)

	edgesMST := 0
	for i := 1; i < vertices && edgesMST < vertices-1; i *= 2 {
		// Reset every component's closest edge.
		for j := 0; j < vertices; j++ {
			closest[j*core.EdgeMembers+2] = core.MaxWeight
		}

		// Scan the local chunk for closest edges.
		for j := 0; j < partEdges; j++ {
			edge := part[j*core.EdgeMembers : (j+1)*core.EdgeMembers]
			canonical := [2]int32{set.FindSet(edge[0]), set.FindSet(edge[1])}
			if canonical[0] == canonical[1] {
				continue
			}

			for _, c := range canonical {
				slot := closest[c*core.EdgeMembers : (c+1)*core.EdgeMembers]
				if slot[2] == core.MaxWeight || slot[2] > edge[2] {
					core.CopyEdge(slot, edge)
				}
			}
		}

		if parallel {
			// Element-wise min reduce by recursive doubling, then
			// publish rank 0's combined view.
			for step := 1; step < size; step *= 2 {
				if rank%(2*step) == 0 {
					from := rank + step
					if from >= size {
						continue
					}
					received, recvErr := cl.RecvInts(from)
					if recvErr != nil {
						return nil, recvErr
					}
					for v := 0; v < vertices; v++ {
						base := v * core.EdgeMembers
						if received[base+2] < closest[base+2] {
							core.CopyEdge(closest[base:], received[base:])
						}
					}
				} else if rank%step == 0 {
					if sendErr := cl.SendInts(rank-step, closest); sendErr != nil {
						return nil, sendErr
					}
				}
			}

			closest, err = cl.Broadcast(0, closest)
			if err != nil {
				return nil, err
			}
		}

		// Union the surviving closest edges; all replicas see the same
		// array, so the disjoint sets stay in lockstep.
		for j := 0; j < vertices; j++ {
			base := j * core.EdgeMembers
			if closest[base+2] == core.MaxWeight {
				continue
			}
			from, to := closest[base], closest[base+1]
			if set.FindSet(from) == set.FindSet(to) {
				// Both endpoints already merged this round: the same
				// closest edge was installed for two components.
				continue
			}

			if rank == 0 {
				result.SetEdge(edgesMST, from, to, closest[base+2])
			}
			edgesMST++
			set.UnionSet(from, to)
		}
	}

	return result, nil
}
