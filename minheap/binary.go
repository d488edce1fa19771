package minheap

import "github.com/katalvlaran/spanmst/core"

// initialHeapCapacity is the starting capacity of the element slice;
// append doubles it as the heap grows.
const initialHeapCapacity = 4

// BinaryMinHeap is an indexed binary min-heap over Items. positions
// maps vertex id → index into elements, or core.Unset when the vertex
// is not live; every swap keeps the table in sync, which is what makes
// Decrease O(log n) with an O(1) lookup.
//
// Heap invariant: elements[i].Weight >= elements[(i-1)/2].Weight for
// every non-root index i.
type BinaryMinHeap struct {
	elements  []Item
	positions []int32
}

// NewBinaryMinHeap returns an empty heap able to track vertices in
// [0, vertices).
// Complexity: O(V) for the positions table.
func NewBinaryMinHeap(vertices int) *BinaryMinHeap {
	positions := make([]int32, vertices)
	for i := range positions {
		positions[i] = core.Unset
	}

	return &BinaryMinHeap{
		elements:  make([]Item, 0, initialHeapCapacity),
		positions: positions,
	}
}

// Len reports the number of live entries.
// Complexity: O(1).
func (h *BinaryMinHeap) Len() int {
	return len(h.elements)
}

// Push appends a new entry at the tail, records its position, and
// sifts it up.
// Complexity: O(log n) plus amortized O(1) growth.
func (h *BinaryMinHeap) Push(vertex, via, weight int32) {
	h.elements = append(h.elements, Item{Vertex: vertex, Via: via, Weight: weight})
	h.positions[vertex] = int32(len(h.elements) - 1)
	h.siftUp(len(h.elements) - 1)
}

// Pop removes and returns the root. The freed vertex's position is
// cleared, the last element moves to the root slot, and the heap is
// restored by sifting down.
// Complexity: O(log n).
func (h *BinaryMinHeap) Pop() (Item, bool) {
	if len(h.elements) == 0 {
		return Item{}, false
	}

	top := h.elements[0]
	h.positions[top.Vertex] = core.Unset

	last := len(h.elements) - 1
	h.elements[0] = h.elements[last]
	h.elements = h.elements[:last]
	if last > 0 {
		h.positions[h.elements[0].Vertex] = 0
		h.siftDown(0)
	}

	return top, true
}

// Decrease lowers vertex's entry to (via, weight) when the stored
// weight strictly exceeds weight, then sifts up. A vertex that is no
// longer live, or a non-improving weight, is a no-op.
// Complexity: O(log n).
func (h *BinaryMinHeap) Decrease(vertex, via, weight int32) {
	pos := h.positions[vertex]
	if pos == core.Unset || h.elements[pos].Weight <= weight {
		return
	}

	h.elements[pos].Via = via
	h.elements[pos].Weight = weight
	h.siftUp(int(pos))
}

// siftUp restores the heap property from pos towards the root.
func (h *BinaryMinHeap) siftUp(pos int) {
	for pos > 0 {
		parent := (pos - 1) / 2
		if h.elements[pos].Weight >= h.elements[parent].Weight {
			break
		}
		h.swap(pos, parent)
		pos = parent
	}
}

// siftDown restores the heap property from pos towards the leaves,
// always descending into the smaller child. Child bounds use strict
// comparisons against the live length.
func (h *BinaryMinHeap) siftDown(pos int) {
	for {
		left := 2*pos + 1
		right := 2*pos + 2
		smallest := pos
		if left < len(h.elements) && h.elements[left].Weight < h.elements[smallest].Weight {
			smallest = left
		}
		if right < len(h.elements) && h.elements[right].Weight < h.elements[smallest].Weight {
			smallest = right
		}
		if smallest == pos {
			break
		}
		h.swap(pos, smallest)
		pos = smallest
	}
}

// swap exchanges two elements and keeps the positions table in sync.
func (h *BinaryMinHeap) swap(i, j int) {
	h.positions[h.elements[i].Vertex] = int32(j)
	h.positions[h.elements[j].Vertex] = int32(i)
	h.elements[i], h.elements[j] = h.elements[j], h.elements[i]
}
