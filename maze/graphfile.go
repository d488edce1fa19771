package maze

import (
	"bufio"
	"fmt"
	"os"

	"github.com/katalvlaran/spanmst/core"
)

// WriteGraphFile writes the graph in the line-oriented format: a
// "<V> <E>" header followed by one "from to weight" line per edge.
func WriteGraphFile(g *core.WeightedGraph, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("maze: create graph file: %w", err)
	}

	writer := bufio.NewWriter(file)
	if _, err = fmt.Fprintf(writer, "%d %d\n", g.Vertices, g.Edges); err != nil {
		_ = file.Close()

		return fmt.Errorf("maze: write graph file: %w", err)
	}
	for i := 0; i < g.Edges; i++ {
		e := g.Edge(i)
		if _, err = fmt.Fprintf(writer, "%d %d %d\n", e.From, e.To, e.Weight); err != nil {
			_ = file.Close()

			return fmt.Errorf("maze: write graph file: %w", err)
		}
	}

	if err = writer.Flush(); err != nil {
		_ = file.Close()

		return fmt.Errorf("maze: flush graph file: %w", err)
	}

	return file.Close()
}

// ReadGraphFile parses a graph file written by WriteGraphFile (or any
// producer of the same whitespace-separated format).
func ReadGraphFile(path string) (*core.WeightedGraph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maze: open graph file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := bufio.NewReader(file)

	var vertices, edges int
	if _, err = fmt.Fscan(reader, &vertices, &edges); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if vertices < 0 || edges < 0 {
		return nil, ErrBadHeader
	}

	g := core.NewWeightedGraph(vertices, edges)
	for i := 0; i < edges; i++ {
		var from, to, weight int32
		if _, err = fmt.Fscan(reader, &from, &to, &weight); err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrBadEdge, i, err)
		}
		g.SetEdge(i, from, to, weight)
	}

	return g, nil
}
