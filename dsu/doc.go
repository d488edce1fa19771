// Package dsu implements a disjoint-set (union-find) structure over
// dense vertex ids [0, V) with path compression and union by rank.
//
// The MST kernels rely on two laws:
//
//   - FindSet(FindSet(v)) == FindSet(v): the canonical element of a
//     component is stable until the next UnionSet touching it.
//   - After UnionSet(a, b), FindSet(a) == FindSet(b).
//
// FindSet is iterative (two passes: locate the root, then re-walk to
// compress), so arbitrarily deep inputs cannot exhaust the stack.
// Amortized complexity is near-constant per operation under path
// compression plus union by rank.
//
// In Borůvka every rank holds its own replica of the Set and applies
// the same broadcast closest-edge array, so the replicas stay in
// lockstep without any cross-rank synchronization.
package dsu
