package dsu

import "github.com/katalvlaran/spanmst/core"

// Set tracks a partition of the dense vertex set {0..V-1} into disjoint
// components. parent[v] == core.Unset means v is its own root; rank
// approximates tree depth for union by rank.
type Set struct {
	parent []int32
	rank   []int32
}

// NewSet returns a Set over the given number of elements, every element
// initially alone in its own component.
// Complexity: O(V).
func NewSet(elements int) *Set {
	parent := make([]int32, elements)
	for i := range parent {
		parent[i] = core.Unset
	}

	return &Set{
		parent: parent,
		rank:   make([]int32, elements),
	}
}

// Elements returns the size of the universe the set was built over.
func (s *Set) Elements() int {
	return len(s.parent)
}

// FindSet returns the canonical element of the component containing v.
// It compresses the walked path, so parent[v] points at the root on
// return for every non-root v on the path.
// Complexity: amortized near O(1).
func (s *Set) FindSet(v int32) int32 {
	// First pass: locate the root.
	root := v
	for s.parent[root] != core.Unset {
		root = s.parent[root]
	}

	// Second pass: point every visited element straight at the root.
	for v != root {
		next := s.parent[v]
		s.parent[v] = root
		v = next
	}

	return root
}

// UnionSet merges the components containing a and b using union by
// rank: the lower-rank root is attached under the higher-rank root, and
// on a tie the surviving root's rank grows by one. Inputs need not be
// roots. Merging a component with itself is a no-op.
// Complexity: amortized near O(1).
func (s *Set) UnionSet(a, b int32) {
	root1 := s.FindSet(a)
	root2 := s.FindSet(b)

	switch {
	case root1 == root2:
		return
	case s.rank[root1] < s.rank[root2]:
		s.parent[root1] = root2
	case s.rank[root1] > s.rank[root2]:
		s.parent[root2] = root1
	default:
		s.parent[root1] = root2
		s.rank[root2] = s.rank[root1] + 1
	}
}
