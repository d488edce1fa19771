package minheap

import "math"

// noHandle marks an absent node reference inside the arena.
const noHandle int32 = -1

// fibNode is one arena slot. All structural references (parent, child,
// left, right) are handles into the owning heap's nodes slice; left and
// right form the circular doubly linked sibling list.
type fibNode struct {
	vertex int32
	via    int32
	weight int32
	degree int32
	marked bool
	parent int32
	child  int32
	left   int32
	right  int32
}

// FibonacciMinHeap is a Fibonacci min-heap over Items. The root list is
// a circular doubly linked list of heap-ordered trees; minimum points
// at the overall minimum root. positions maps vertex id → node handle
// (noHandle when absent). Nodes live in the arena slice and popped
// handles are recycled through the free list.
//
// Amortized costs: Push O(1), Decrease O(1), Pop O(log n).
type FibonacciMinHeap struct {
	nodes     []fibNode
	free      []int32
	positions []int32
	minimum   int32
	size      int
}

// NewFibonacciMinHeap returns an empty heap able to track vertices in
// [0, vertices).
// Complexity: O(V) for the positions table.
func NewFibonacciMinHeap(vertices int) *FibonacciMinHeap {
	positions := make([]int32, vertices)
	for i := range positions {
		positions[i] = noHandle
	}

	return &FibonacciMinHeap{
		nodes:     make([]fibNode, 0, vertices),
		positions: positions,
		minimum:   noHandle,
	}
}

// Len reports the number of live entries.
// Complexity: O(1).
func (h *FibonacciMinHeap) Len() int {
	return h.size
}

// alloc takes a handle off the free list, or grows the arena, and
// resets the slot to a detached singleton.
func (h *FibonacciMinHeap) alloc(vertex, via, weight int32) int32 {
	var handle int32
	if n := len(h.free); n > 0 {
		handle = h.free[n-1]
		h.free = h.free[:n-1]
	} else {
		h.nodes = append(h.nodes, fibNode{})
		handle = int32(len(h.nodes) - 1)
	}

	h.nodes[handle] = fibNode{
		vertex: vertex,
		via:    via,
		weight: weight,
		parent: noHandle,
		child:  noHandle,
		left:   handle,
		right:  handle,
	}

	return handle
}

// Push creates a singleton node and splices it into the root list.
// Complexity: amortized O(1).
func (h *FibonacciMinHeap) Push(vertex, via, weight int32) {
	handle := h.alloc(vertex, via, weight)
	h.positions[vertex] = handle
	h.insertRoot(handle)
	h.size++
}

// insertRoot splices handle into the root list to the left of minimum
// and promotes it to minimum when its weight is smaller.
func (h *FibonacciMinHeap) insertRoot(handle int32) {
	if h.minimum == noHandle {
		h.minimum = handle
		h.nodes[handle].left = handle
		h.nodes[handle].right = handle

		return
	}

	min := h.minimum
	end := h.nodes[min].left
	h.nodes[min].left = handle
	h.nodes[handle].left = end
	h.nodes[end].right = handle
	h.nodes[handle].right = min

	if h.nodes[handle].weight < h.nodes[min].weight {
		h.minimum = handle
	}
}

// Pop removes the minimum: its payload is snapshotted, each of its
// children is spliced into the root list with parent cleared, the node
// leaves the root list and the arena recycles its handle, and a
// non-empty remainder is consolidated.
// Complexity: amortized O(log n).
func (h *FibonacciMinHeap) Pop() (Item, bool) {
	min := h.minimum
	if min == noHandle {
		return Item{}, false
	}
	item := Item{
		Vertex: h.nodes[min].vertex,
		Via:    h.nodes[min].via,
		Weight: h.nodes[min].weight,
	}

	// Splice every child of the minimum into the root list.
	for i := h.nodes[min].degree; i > 0; i-- {
		child := h.nodes[min].child
		if h.nodes[child].right == child {
			h.nodes[min].child = noHandle
		} else {
			h.nodes[min].child = h.nodes[child].right
			h.nodes[h.nodes[child].right].left = h.nodes[child].left
			h.nodes[h.nodes[child].left].right = h.nodes[child].right
		}
		h.nodes[child].parent = noHandle
		h.nodes[child].right = min
		h.nodes[child].left = h.nodes[min].left
		h.nodes[h.nodes[min].left].right = child
		h.nodes[min].left = child
	}

	// Remove the minimum from the root list.
	if h.nodes[min].right == min {
		h.minimum = noHandle
	} else {
		h.nodes[h.nodes[min].right].left = h.nodes[min].left
		h.nodes[h.nodes[min].left].right = h.nodes[min].right
		h.minimum = h.nodes[min].right
	}
	h.size--
	h.positions[item.Vertex] = noHandle
	h.free = append(h.free, min)

	if h.size > 0 {
		h.consolidate()
	}

	return item, true
}

// Decrease lowers vertex's key to (via, weight) when weight strictly
// improves the stored one. A root only competes for minimum; a
// non-root that now undercuts its parent is cut to the root list.
// Complexity: amortized O(1).
func (h *FibonacciMinHeap) Decrease(vertex, via, weight int32) {
	handle := h.positions[vertex]
	if handle == noHandle || h.nodes[handle].weight <= weight {
		return
	}

	h.nodes[handle].via = via
	h.nodes[handle].weight = weight

	parent := h.nodes[handle].parent
	switch {
	case parent == noHandle:
		if weight < h.nodes[h.minimum].weight {
			h.minimum = handle
		}
	case weight < h.nodes[parent].weight:
		// Heap order violated below parent: cut the node loose.
		h.cut(handle)
	}
}

// cut detaches handle from its parent's child list, reinserts it as a
// root with its mark cleared, and walks the mark cascade: a marked
// non-root parent is cut in turn, an unmarked non-root parent becomes
// marked.
func (h *FibonacciMinHeap) cut(handle int32) {
	parent := h.nodes[handle].parent
	h.nodes[parent].degree--

	if h.nodes[handle].right == handle {
		// Sole child: the parent's child list becomes empty.
		h.nodes[parent].child = noHandle
	} else {
		h.nodes[h.nodes[handle].right].left = h.nodes[handle].left
		h.nodes[h.nodes[handle].left].right = h.nodes[handle].right
		if h.nodes[parent].child == handle {
			h.nodes[parent].child = h.nodes[handle].right
		}
	}

	h.insertRoot(handle)
	h.nodes[handle].parent = noHandle
	h.nodes[handle].marked = false

	if h.nodes[parent].parent != noHandle {
		if h.nodes[parent].marked {
			h.cut(parent)
		} else {
			h.nodes[parent].marked = true
		}
	}
}

// consolidate links roots of equal degree until all degrees are
// distinct, then rebuilds the root list from the degree table and
// re-derives the minimum. The heavier of two linked roots becomes the
// child of the lighter; a freshly linked child loses its mark.
func (h *FibonacciMinHeap) consolidate() {
	degreeSize := int(math.Ceil(2*math.Log2(float64(h.size)))) + 1
	degree := make([]int32, degreeSize)
	for i := range degree {
		degree[i] = noHandle
	}

	// Detach each root in turn and merge it into the degree table.
	node := h.minimum
	for node != noHandle {
		next := h.nodes[node].right
		if next == node {
			next = noHandle
		}
		h.nodes[h.nodes[node].right].left = h.nodes[node].left
		h.nodes[h.nodes[node].left].right = h.nodes[node].right
		h.nodes[node].right = node
		h.nodes[node].left = node

		current := h.nodes[node].degree
		for degree[current] != noHandle {
			other := degree[current]
			if h.nodes[node].weight > h.nodes[other].weight {
				node, other = other, node
			}

			// other becomes a child of node.
			if h.nodes[node].child == noHandle {
				h.nodes[node].child = other
				h.nodes[other].parent = node
			} else {
				h.nodes[other].parent = node
				h.nodes[other].right = h.nodes[node].child
				h.nodes[other].left = h.nodes[h.nodes[node].child].left
				h.nodes[h.nodes[other].right].left = other
				h.nodes[h.nodes[other].left].right = other
			}
			h.nodes[node].degree++
			h.nodes[other].marked = false
			degree[current] = noHandle
			current++
		}
		degree[current] = node

		node = next
	}

	// Rebuild the root list and locate the new minimum.
	h.minimum = noHandle
	for _, handle := range degree {
		if handle == noHandle {
			continue
		}
		if h.minimum == noHandle {
			h.minimum = handle
			h.nodes[handle].right = handle
			h.nodes[handle].left = handle
			continue
		}

		min := h.minimum
		h.nodes[handle].right = min
		h.nodes[handle].left = h.nodes[min].left
		h.nodes[h.nodes[min].left].right = handle
		h.nodes[min].left = handle
		if h.nodes[handle].weight < h.nodes[min].weight {
			h.minimum = handle
		}
	}
}
