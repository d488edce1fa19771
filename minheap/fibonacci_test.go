package minheap_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanmst/minheap"
)

// TestFibonacci_PopEmpty: popping an empty heap reports ok == false.
func TestFibonacci_PopEmpty(t *testing.T) {
	h := minheap.NewFibonacciMinHeap(4)
	_, ok := h.Pop()
	assert.False(t, ok)
	assert.Zero(t, h.Len())
}

// TestFibonacci_PopOrdering pushes shuffled weights and expects sorted
// pops; every pop of the drain forces a consolidation.
func TestFibonacci_PopOrdering(t *testing.T) {
	const n = 200
	h := minheap.NewFibonacciMinHeap(n)
	r := rand.New(rand.NewSource(11))
	for v := int32(0); v < n; v++ {
		h.Push(v, v, r.Int31n(1000))
	}
	require.Equal(t, n, h.Len())

	weights := drain(h)
	require.Len(t, weights, n)
	requireNonDecreasing(t, weights)
}

// TestFibonacci_DecreaseKey lowers a deep entry below everything else
// and expects it to pop first with the new via recorded.
func TestFibonacci_DecreaseKey(t *testing.T) {
	h := minheap.NewFibonacciMinHeap(8)
	for v := int32(0); v < 8; v++ {
		h.Push(v, 0, 10*(v+1))
	}
	// A pop consolidates the root list into trees, so vertex 7 is now a
	// non-root somewhere below.
	_, ok := h.Pop()
	require.True(t, ok)

	h.Decrease(7, 3, 1)
	item, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, minheap.Item{Vertex: 7, Via: 3, Weight: 1}, item)
}

// TestFibonacci_DecreaseNoOp: equal or larger weights and absent
// vertices leave the heap untouched.
func TestFibonacci_DecreaseNoOp(t *testing.T) {
	h := minheap.NewFibonacciMinHeap(3)
	h.Push(0, 0, 10)
	h.Push(1, 0, 20)

	h.Decrease(1, 9, 20)
	h.Decrease(1, 9, 99)
	h.Decrease(2, 9, 1)

	item, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, int32(0), item.Vertex)
	item, ok = h.Pop()
	require.True(t, ok)
	assert.Equal(t, minheap.Item{Vertex: 1, Via: 0, Weight: 20}, item)
}

// TestFibonacci_CascadingCuts stresses decrease-key against a
// consolidated heap: repeated decreases below parents must keep pop
// order correct as marked ancestors cascade to the root list.
func TestFibonacci_CascadingCuts(t *testing.T) {
	const n = 64
	h := minheap.NewFibonacciMinHeap(n)
	for v := int32(0); v < n; v++ {
		h.Push(v, 0, 1000+v)
	}
	// Consolidate into binomial-like trees.
	first, ok := h.Pop()
	require.True(t, ok)
	require.Equal(t, int32(1000), first.Weight)

	// Decrease a scattering of vertices to small keys, forcing cuts and
	// mark cascades.
	r := rand.New(rand.NewSource(3))
	want := make(map[int32]int32) // vertex -> new weight
	for _, v := range []int32{63, 31, 47, 15, 55, 23} {
		w := r.Int31n(100)
		h.Decrease(v, 0, w)
		want[v] = w
	}

	weights := drain(h)
	require.Len(t, weights, n-1)
	requireNonDecreasing(t, weights)
}

// TestFibonacci_ReusePoppedVertex: a popped vertex is absent for
// Decrease but its arena slot may be reused by a fresh Push.
func TestFibonacci_ReusePoppedVertex(t *testing.T) {
	h := minheap.NewFibonacciMinHeap(2)
	h.Push(0, 0, 1)
	h.Push(1, 0, 2)

	_, ok := h.Pop()
	require.True(t, ok)
	h.Decrease(0, 1, 0) // vertex 0 is gone: no-op
	require.Equal(t, 1, h.Len())

	h.Push(0, 1, 3) // reinsert; arena recycles the freed slot
	weights := drain(h)
	assert.Equal(t, []int32{2, 3}, weights)
}
