// Package spanmst is a distributed-memory Minimum Spanning Tree engine.
//
// 🚀 What is spanmst?
//
//	A bulk-synchronous, message-passing MST toolkit that brings together:
//		• Core primitives: flat edge-list graphs, adjacency lists, disjoint sets
//		• Heaps: an indexed binary min-heap and an arena-backed Fibonacci min-heap
//		• Four interchangeable MST kernels: Kruskal, Prim (binary heap),
//		  Prim (Fibonacci heap) and Borůvka
//		• A Cluster abstraction with in-process and TCP transports, plus the
//		  scatter / broadcast / send-receive operations on which the
//		  parallel kernels build their recursive-doubling reductions
//		• Maze tooling: grid-graph generation, a line-oriented graph file
//		  format, and an ASCII maze renderer
//
// Two of the four kernels are parallel: Kruskal distributes its sort phase
// across all ranks (scatter + pairwise merge), and Borůvka distributes the
// closest-edge search each round (scatter + element-wise min reduce). The
// Prim variants run on rank 0 only; other ranks are no-ops.
//
// Under the hood, everything is organized into focused subpackages:
//
//	core/     — WeightedGraph, Edge, AdjacencyList and shared constants
//	dsu/      — disjoint set with path compression and union by rank
//	minheap/  — binary and Fibonacci min-heaps with decrease-key
//	cluster/  — rank/size handle, transports, collectives, metrics
//	edgesort/ — sequential merge-sort and the parallel sort phase
//	mst/      — the four kernels and the algorithm dispatcher
//	maze/     — grid generator, graph file reader/writer, renderer
//	config/   — env/flag configuration and its broadcast wire codec
//
// The spanmst binary in cmd/spanmst ties the pieces together: it reads its
// configuration from flags and SPANMST_* environment variables, broadcasts
// it to every rank, solves, and reports the MST weight on rank 0.
package spanmst
