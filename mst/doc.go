// Package mst computes minimum spanning trees of a flat edge-list
// graph with four interchangeable kernels: Kruskal, Prim over a binary
// min-heap, Prim over a Fibonacci min-heap, and Borůvka.
//
// Execution model:
//
//   - Every kernel is invoked on every rank of a cluster (single
//     program, multiple data). Kruskal's sort phase and the whole of
//     Borůvka communicate across ranks; the Prim variants compute on
//     rank 0 only while other ranks return an empty result.
//   - Rank 0 always ends up owning the MST edge list. Kruskal and
//     Borůvka produce V-1 edges in the order the kernel selected them
//     (ascending weight for Kruskal). The Prim variants produce V
//     entries whose first is the synthetic root sentinel (0, 0, 0);
//     its zero weight keeps every weight total unchanged.
//
// Dispatch:
//
//	result, err := mst.Compute(cl, graph, mst.WithAlgorithm(mst.AlgorithmBoruvka))
//
// Algorithm numbering follows the CLI surface: 0 Kruskal, 1
// Prim/Fibonacci, 2 Prim/Binary, 3 Borůvka.
//
// Errors:
//
//   - ErrNilCluster, ErrNilGraph: missing collaborators.
//   - ErrUnknownAlgorithm: a selector outside [0, 3].
//   - edgesort.ErrUnsupportedPartition surfaces unchanged from the
//     parallel phases.
//
// The kernels assume a connected input graph; on a disconnected graph
// they still terminate but the result is a spanning forest fragment,
// exactly as the underlying algorithms behave without a connectivity
// check.
package mst
