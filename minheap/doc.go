// Package minheap provides the two decrease-key priority queues the
// Prim kernels choose between: an indexed binary min-heap and a
// Fibonacci min-heap.
//
// What:
//
//   - Item is the queued payload: (vertex, via, weight), where via is
//     the vertex the candidate edge arrives from.
//   - BinaryMinHeap keeps a positions table (vertex → slice index) so
//     Decrease finds its element in O(1) and sifts in O(log n).
//   - FibonacciMinHeap keeps a positions table (vertex → node handle)
//     and supports amortized O(1) Decrease via cut with cascading marks,
//     and O(log n) Pop via consolidate.
//   - Interface abstracts over both so a caller can swap heaps without
//     touching the scan loop.
//
// Representation note: the Fibonacci heap's sibling lists are circular
// and doubly linked with parent back-pointers, a shape that plain
// ownership trees cannot express. Nodes therefore live in an arena
// ([]fibNode) and every link field is a stable int32 handle into it;
// the arena owns all node storage and popped handles go on a free list
// for reuse.
//
// Both heaps key strictly on weight. Decrease with a weight that does
// not strictly improve the stored one is a no-op, as is Pop on an
// empty heap (it reports ok == false).
package minheap
