// Package minheap: the shared Item payload and the heap Interface both
// implementations satisfy.
package minheap

// Item is one queued entry: the vertex it belongs to, the vertex the
// best candidate edge arrives from, and that edge's weight.
type Item struct {
	// Vertex is the dense vertex id this entry tracks.
	Vertex int32

	// Via is the other endpoint of the current best edge to Vertex.
	Via int32

	// Weight is the weight of that edge; the heap orders by it.
	Weight int32
}

// Interface is the contract the Prim scan loop needs: a min-heap keyed
// on Weight with decrease-key addressed by vertex id.
type Interface interface {
	// Push inserts a new entry for vertex. Each vertex may be live in
	// the heap at most once.
	Push(vertex, via, weight int32)

	// Pop removes and returns the minimum-weight entry. ok is false on
	// an empty heap.
	Pop() (item Item, ok bool)

	// Decrease lowers vertex's entry to (via, weight) when weight
	// strictly improves the stored one; otherwise it is a no-op, as it
	// is for a vertex no longer in the heap.
	Decrease(vertex, via, weight int32)

	// Len reports the number of live entries.
	Len() int
}

var (
	_ Interface = (*BinaryMinHeap)(nil)
	_ Interface = (*FibonacciMinHeap)(nil)
)
