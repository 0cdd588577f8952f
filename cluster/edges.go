// SPDX-License-Identifier: MIT

package cluster

import "github.com/katalvlaran/spatialkit"

// PairwiseEdges returns one Edge per unordered pair (i, j), i < j, weighted by
// squared distance. The result has len(points)*(len(points)-1)/2 entries,
// ordered by (A, B).
// Complexity: O(N²) time and memory.
func PairwiseEdges(points []Point) []Edge {
	n := len(points)
	if n < 2 {
		return []Edge{}
	}
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{Weight: points[i].DistSq(points[j]), A: i, B: j})
		}
	}
	spatialkit.Logger().Debug("cluster: pairwise edges built", "points", n, "edges", len(edges))

	return edges
}

// SelectSmallest partially reorders edges in place so that the k smallest
// under (Weight, A, B) occupy edges[:k], and returns that prefix. The prefix
// itself is not sorted. k is clamped to [0, len(edges)].
//
// Steps:
//  1. Median-of-three pivot on [lo, hi], Lomuto partition around it.
//  2. If the pivot lands at k, everything left of it is strictly smaller: done.
//  3. Otherwise continue on the side that contains position k.
//
// Complexity: O(E) expected, O(E²) worst case.
func SelectSmallest(edges []Edge, k int) []Edge {
	if k <= 0 {
		return edges[:0]
	}
	if k >= len(edges) {
		return edges
	}
	lo, hi := 0, len(edges)-1
	for lo < hi {
		p := partition(edges, lo, hi)
		switch {
		case p == k:
			return edges[:k]
		case p < k:
			lo = p + 1
		default:
			hi = p - 1
		}
	}

	return edges[:k]
}

// partition places the median of edges[lo], edges[mid], edges[hi] at its
// final sorted position within [lo, hi] and returns that position.
func partition(e []Edge, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if e[mid].less(e[lo]) {
		e[mid], e[lo] = e[lo], e[mid]
	}
	if e[hi].less(e[lo]) {
		e[hi], e[lo] = e[lo], e[hi]
	}
	if e[mid].less(e[hi]) {
		e[mid], e[hi] = e[hi], e[mid]
	}
	pivot := e[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if e[j].less(pivot) {
			e[i], e[j] = e[j], e[i]
			i++
		}
	}
	e[i], e[hi] = e[hi], e[i]

	return i
}
