package maze

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/spanmst/core"
)

// maximumRandom bounds the generated edge weights: uniform in [0, 100).
const maximumRandom = 100

// Generate builds a rows×columns grid graph with pseudo-random edge
// weights drawn from rng. Vertices are numbered row-major; edges are
// emitted per cell, horizontal neighbor first, then vertical, so the
// edge order (and, for a fixed rng seed, the weight vector) is
// deterministic. The edge count is always 2·V − rows − columns.
// Complexity: O(rows·columns).
func Generate(rows, columns int, rng *rand.Rand) (*core.WeightedGraph, error) {
	if rows < 1 || columns < 1 {
		return nil, ErrDimensions
	}

	vertices := rows * columns
	edges := vertices*2 - rows - columns
	g := core.NewWeightedGraph(vertices, edges)

	next := 0
	for i := 0; i < rows; i++ {
		for j := 0; j < columns; j++ {
			vertex := int32(i*columns + j)
			if j != columns-1 {
				g.SetEdge(next, vertex, vertex+1, rng.Int31n(maximumRandom))
				next++
			}
			if i != rows-1 {
				g.SetEdge(next, vertex, vertex+int32(columns), rng.Int31n(maximumRandom))
				next++
			}
		}
	}

	return g, nil
}

// WriteFile generates a fresh time-seeded maze and writes it to path.
func WriteFile(rows, columns int, path string) error {
	g, err := Generate(rows, columns, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return err
	}

	return WriteGraphFile(g, path)
}
