// Package edgesort sorts flat edge lists by ascending weight, both
// sequentially and across a cluster.
//
// What:
//
//   - MergeSort is a classic top-down recursive mergesort over the
//     (from, to, weight) triples of a flat edge list, keyed on weight,
//     stable, with inclusive bounds.
//   - The merge step uses a bitonic copy layout: the left run is
//     copied forward and the right run reversed into one scratch
//     buffer, then two pointers walk inward from both ends. The right
//     pointer needs no end-of-run check: once its run is exhausted it
//     rests on the left run's largest element, which never wins a
//     strict comparison. The left pointer's exhaustion is checked, so
//     equal weights keep their input order.
//   - Sort is the parallel phase: broadcast the edge count, scatter
//     ⌈E/P⌉-edge chunks (the last rank trims the remainder), sort each
//     chunk locally, then combine by recursive-doubling pairwise merge
//     until rank 0 holds the fully sorted list and installs it as the
//     graph's edge list.
//   - ScatterEdgeList is shared with the Borůvka kernel, which
//     partitions its edge scan the same way.
//
// The partition guard is inherited from the engine's origins and kept
// as-is: fewer than roughly two edges per rank (excluding the exact
// E == P case) aborts with ErrUnsupportedPartition on every rank.
package edgesort
