package edgesort

import (
	"errors"

	"github.com/katalvlaran/spanmst/cluster"
	"github.com/katalvlaran/spanmst/core"
)

// ErrUnsupportedPartition indicates an edge count too small to spread
// over the rank count: the chunking needs roughly two edges per rank,
// except for the exact E == P case.
var ErrUnsupportedPartition = errors.New("edgesort: unsupported edge count for this rank count")

// ScatterEdgeList distributes the root's flat edge list over all ranks
// in ⌈E/P⌉-edge chunks and returns this rank's chunk plus its edge
// count. The root pads its send buffer up to chunk·P edges so every
// rank receives an equal frame; the last rank then trims its count to
// the remainder. Only the root's edgeList argument is consulted.
//
// The partition guard runs on every rank before any traffic, so an
// unsupported combination fails everywhere without stranding a peer in
// a matched receive.
func ScatterEdgeList(cl *cluster.Cluster, edgeList []int32, edges int) ([]int32, int, error) {
	size := cl.Size()
	if edges/2+1 < size && edges != size {
		return nil, 0, ErrUnsupportedPartition
	}

	chunk := (edges + size - 1) / size
	var padded []int32
	if cl.Rank() == 0 {
		padded = make([]int32, chunk*size*core.EdgeMembers)
		copy(padded, edgeList)
	}

	part, err := cl.Scatter(0, padded, chunk*core.EdgeMembers)
	if err != nil {
		return nil, 0, err
	}

	partEdges := chunk
	if cl.Rank() == size-1 {
		// The last rank owns whatever the earlier full chunks leave
		// over, which may be shorter than a chunk or even empty; the
		// padding the root sent along is never counted.
		partEdges = edges - chunk*(size-1)
	}

	return part, partEdges, nil
}

// Sort sorts the graph's edge list by ascending weight across the
// whole cluster: broadcast E, scatter chunks, sort locally, then merge
// pairwise by recursive doubling. After the final step rank 0 holds
// the complete sorted list and installs it as g.EdgeList; other ranks
// leave their graph untouched. With a single rank the whole list is
// sorted in place and no traffic occurs.
func Sort(cl *cluster.Cluster, g *core.WeightedGraph) error {
	rank, size := cl.Rank(), cl.Size()
	parallel := size != 1

	// Announce the edge count.
	var header []int32
	if rank == 0 {
		header = []int32{int32(g.Edges)}
	}
	header, err := cl.Broadcast(0, header)
	if err != nil {
		return err
	}
	edges := int(header[0])

	// Distribute the chunks.
	var part []int32
	partEdges := edges
	if parallel {
		part, partEdges, err = ScatterEdgeList(cl, g.EdgeList, edges)
		if err != nil {
			return err
		}
	} else {
		part = g.EdgeList
	}

	// Sort the local chunk.
	MergeSort(part, 0, partEdges-1)
	if !parallel {
		return nil
	}

	// Combine by recursive doubling: at step s the receivers are the
	// ranks divisible by 2s; each absorbs the chunk of rank+s (when it
	// exists) and merges in place. Senders hand their chunk down and
	// are idle for the remaining steps.
	for step := 1; step < size; step *= 2 {
		if rank%(2*step) == 0 {
			from := rank + step
			if from >= size {
				continue
			}
			received, recvErr := cl.RecvInts(from)
			if recvErr != nil {
				return recvErr
			}
			receivedEdges := len(received) / core.EdgeMembers

			grown := make([]int32, (partEdges+receivedEdges)*core.EdgeMembers)
			copy(grown, part[:partEdges*core.EdgeMembers])
			copy(grown[partEdges*core.EdgeMembers:], received)
			merge(grown, 0, partEdges+receivedEdges-1, partEdges-1)

			part = grown
			partEdges += receivedEdges
		} else if rank%step == 0 {
			if sendErr := cl.SendInts(rank-step, part[:partEdges*core.EdgeMembers]); sendErr != nil {
				return sendErr
			}
		}
	}

	if rank == 0 {
		// The merged buffer becomes the graph's edge list.
		g.EdgeList = part
	}

	return nil
}
