package maze

import (
	"strings"

	"github.com/katalvlaran/spanmst/core"
)

// Maze rendering characters.
const (
	emptyField     = ' '
	horizontalEdge = '-'
	verticalEdge   = '|'
	vertexMark     = '+'
)

// Render draws the graph, usually a spanning tree of a grid maze, as a
// (2·rows−1)×(2·columns−1) ASCII grid: every even row and even column
// holds a '+', each edge becomes a '-' or '|' in the cell between its
// endpoints, and all other cells stay blank. Self-loops, such as the
// Prim sentinel, are skipped.
//
// The graph's vertices must fill the rows×columns grid exactly.
// Complexity: O(rows·columns + E).
func Render(g *core.WeightedGraph, rows, columns int) (string, error) {
	if rows < 1 || columns < 1 {
		return "", ErrDimensions
	}
	if rows*columns != g.Vertices {
		return "", ErrGridMismatch
	}

	rowsMaze := rows*2 - 1
	columnsMaze := columns*2 - 1
	grid := make([][]byte, rowsMaze)
	for i := range grid {
		grid[i] = make([]byte, columnsMaze)
		for j := range grid[i] {
			if i%2 == 0 && j%2 == 0 {
				grid[i][j] = vertexMark
			} else {
				grid[i][j] = emptyField
			}
		}
	}

	for i := 0; i < g.Edges; i++ {
		e := g.Edge(i)
		from, to := e.From, e.To
		if from == to {
			continue
		}
		if from > to {
			from, to = to, from
		}

		row := int(from)/columns + int(to)/columns
		if row%2 == 1 {
			// Odd rendered rows hold vertical edges.
			grid[row][(int(to)%columns)*2] = verticalEdge
		} else {
			// Even rendered rows hold horizontal edges.
			grid[row][(int(to)%columns-1)*2+1] = horizontalEdge
		}
	}

	var b strings.Builder
	for _, row := range grid {
		b.Write(row)
		b.WriteByte('\n')
	}

	return b.String(), nil
}
