// Package mst: algorithm selection, options and sentinel errors.
package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spanmst/cluster"
	"github.com/katalvlaran/spanmst/core"
)

// Sentinel errors for MST computation.
var (
	// ErrNilCluster indicates a nil cluster handle.
	ErrNilCluster = errors.New("mst: nil cluster")
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("mst: nil graph")
	// ErrUnknownAlgorithm indicates an algorithm selector outside the
	// supported set.
	ErrUnknownAlgorithm = errors.New("mst: unknown algorithm")
)

// Algorithm selects an MST kernel. The numeric values mirror the CLI's
// -a selector.
type Algorithm int

const (
	// AlgorithmKruskal sorts all edges in parallel, then selects on
	// rank 0 with a disjoint set.
	AlgorithmKruskal Algorithm = iota
	// AlgorithmPrimFibonacci grows the tree on rank 0 using the
	// Fibonacci min-heap.
	AlgorithmPrimFibonacci
	// AlgorithmPrimBinary grows the tree on rank 0 using the binary
	// min-heap.
	AlgorithmPrimBinary
	// AlgorithmBoruvka merges components in parallel rounds of
	// closest-edge selection.
	AlgorithmBoruvka
)

// String names the algorithm for logs and help output.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmKruskal:
		return "kruskal"
	case AlgorithmPrimFibonacci:
		return "prim-fibonacci"
	case AlgorithmPrimBinary:
		return "prim-binary"
	case AlgorithmBoruvka:
		return "boruvka"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a CLI selector to an Algorithm.
func ParseAlgorithm(n int) (Algorithm, error) {
	a := Algorithm(n)
	switch a {
	case AlgorithmKruskal, AlgorithmPrimFibonacci, AlgorithmPrimBinary, AlgorithmBoruvka:
		return a, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, n)
	}
}

// Options configures Compute.
type Options struct {
	// Algorithm picks the kernel; AlgorithmKruskal by default.
	Algorithm Algorithm
}

// Option mutates Options.
type Option func(*Options)

// WithAlgorithm returns an Option selecting the kernel.
func WithAlgorithm(a Algorithm) Option {
	return func(opts *Options) {
		opts.Algorithm = a
	}
}

// DefaultOptions returns Options selecting Kruskal.
func DefaultOptions() Options {
	return Options{Algorithm: AlgorithmKruskal}
}

// Compute runs the selected kernel on this rank. Call it on every rank
// of the cluster with the same options; rank 0's result carries the
// MST.
func Compute(cl *cluster.Cluster, g *core.WeightedGraph, opts ...Option) (*core.WeightedGraph, error) {
	if cl == nil {
		return nil, ErrNilCluster
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	switch options.Algorithm {
	case AlgorithmKruskal:
		return Kruskal(cl, g)
	case AlgorithmPrimFibonacci:
		return PrimFibonacci(cl, g)
	case AlgorithmPrimBinary:
		return PrimBinary(cl, g)
	case AlgorithmBoruvka:
		return Boruvka(cl, g)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(options.Algorithm))
	}
}
