// Package core: AdjacencyList, the per-vertex neighbor index used by
// the Prim kernels.
package core

// initialArcCapacity is the starting capacity of every per-vertex arc
// list; append doubles it as the list grows.
const initialArcCapacity = 4

// Arc is one directed half of an undirected edge as seen from a vertex:
// the neighbor it leads to and the edge weight.
type Arc struct {
	// Vertex is the neighbor vertex id.
	Vertex int32

	// Weight is the weight of the connecting edge.
	Weight int32
}

// AdjacencyList maps each vertex to the ordered sequence of arcs pushed
// so far. It is built once from a graph's edge list before Prim begins
// and is not mutated during the scan.
type AdjacencyList struct {
	lists [][]Arc
}

// NewAdjacencyList allocates one empty arc list per vertex of g, each
// with a small initial capacity.
// Complexity: O(V) time and memory.
func NewAdjacencyList(g *WeightedGraph) *AdjacencyList {
	lists := make([][]Arc, g.Vertices)
	for i := range lists {
		lists[i] = make([]Arc, 0, initialArcCapacity)
	}

	return &AdjacencyList{lists: lists}
}

// Push records the undirected edge (from, to, weight) in both
// directions: (to, weight) is appended to from's list and (from,
// weight) to to's list. Lists grow by doubling.
// Complexity: amortized O(1).
func (l *AdjacencyList) Push(from, to, weight int32) {
	l.lists[from] = append(l.lists[from], Arc{Vertex: to, Weight: weight})
	l.lists[to] = append(l.lists[to], Arc{Vertex: from, Weight: weight})
}

// Arcs returns the arc list of vertex v in push order. The returned
// slice aliases internal storage; callers must not modify it.
// Complexity: O(1).
func (l *AdjacencyList) Arcs(v int32) []Arc {
	return l.lists[v]
}

// Len returns the number of vertices the list was built for.
// Complexity: O(1).
func (l *AdjacencyList) Len() int {
	return len(l.lists)
}
