// Package maze generates grid-maze graphs, reads and writes the
// engine's line-oriented graph file format, and renders a spanning
// tree as an ASCII maze.
//
// File format (plain ASCII, whitespace-separated decimals):
//
//	<V> <E>
//	<from_0> <to_0> <weight_0>
//	...
//
// The generator emits a rows×columns grid in row-major order: for the
// cell at (i, j) it writes the horizontal edge to (i, j+1) when one
// exists, then the vertical edge to (i+1, j). Weights are uniform in
// [0, 100), so a grid always carries E = 2·V − rows − columns edges.
//
// Rendering maps the tree back onto a (2·rows−1)×(2·columns−1)
// character grid: '+' at every vertex, '-' between horizontal
// neighbors, '|' between vertical neighbors, spaces elsewhere.
// A Prim result renders unchanged: its synthetic (0,0,0) sentinel is a
// self-loop and self-loops are skipped.
package maze
