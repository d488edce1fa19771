package edgesort

import "github.com/katalvlaran/spanmst/core"

// MergeSort sorts edges [start, end] of a flat edge list in place by
// ascending weight. Bounds are inclusive edge indices; a range of one
// edge (or less) is already sorted.
// Complexity: O(E log E) time, O(E) scratch per merge.
func MergeSort(edgeList []int32, start, end int) {
	if start >= end {
		return
	}

	pivot := (start + end) / 2
	MergeSort(edgeList, start, pivot)
	MergeSort(edgeList, pivot+1, end)

	merge(edgeList, start, end, pivot)
}

// merge combines the sorted runs [start, pivot] and [pivot+1, end] in
// place. The left run is copied forward into the scratch buffer and
// the right run reversed behind it, so the right pointer stops
// naturally: once the right run is exhausted it rests on the left
// run's largest element, which never compares strictly smaller. The
// left pointer's exhaustion is checked explicitly, so the rest of the
// right run is taken in its own order. Ties take the left element,
// which keeps the sort stable.
func merge(edgeList []int32, start, end, pivot int) {
	length := end - start + 1
	working := make([]int32, length*core.EdgeMembers)

	// Left run, forward.
	copy(working, edgeList[start*core.EdgeMembers:(pivot+1)*core.EdgeMembers])

	// Right run, reversed.
	workingEnd := end + pivot - start + 1
	for i := pivot + 1; i <= end; i++ {
		core.CopyEdge(working[(workingEnd-i)*core.EdgeMembers:], edgeList[i*core.EdgeMembers:])
	}

	left := 0
	leftEnd := pivot - start
	right := end - start
	for k := start; k <= end; k++ {
		if left > leftEnd || working[right*core.EdgeMembers+2] < working[left*core.EdgeMembers+2] {
			core.CopyEdge(edgeList[k*core.EdgeMembers:], working[right*core.EdgeMembers:])
			right--
		} else {
			core.CopyEdge(edgeList[k*core.EdgeMembers:], working[left*core.EdgeMembers:])
			left++
		}
	}
}
