// Package core defines the shared data model of spanmst: the flat
// edge-list WeightedGraph, the Edge view, the per-vertex AdjacencyList,
// and the sentinel constants every other package builds on.
//
// What:
//
//   - WeightedGraph stores E undirected edges as a contiguous []int32 of
//     3·E values laid out as (from, to, weight) triples. The flat layout
//     is what the cluster collectives scatter and the sort phase permutes.
//   - Edge is a plain value view of one triple.
//   - AdjacencyList maps vertex → ordered (neighbor, weight) arcs; both
//     Prim variants consume it.
//
// Why a flat []int32 instead of a slice of structs:
//
//   - The parallel kernels ship edge chunks between ranks as raw int32
//     frames; one contiguous buffer means scatter, reduce and merge all
//     operate on sub-slices with no marshalling step.
//
// Invariants:
//
//   - len(WeightedGraph.EdgeList) == 3·Edges at all times.
//   - AdjacencyList holds both directions of every pushed edge, so the
//     sum of all arc-list lengths equals 2·E.
//
// Vertex ids are dense integers in [0, Vertices). Weights are 32-bit
// signed; MaxWeight doubles as the "no edge yet" sentinel in the
// kernels, and Unset marks absent entries in position tables.
package core
