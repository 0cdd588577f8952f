// SPDX-License-Identifier: MIT

package cluster

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/spatialkit"
	"github.com/katalvlaran/spatialkit/dsu"
)

// KruskalSweep runs Kruskal's algorithm over the complete graph of points and
// returns every edge that merged two components, in the order they merged.
// The result has exactly len(points)-1 edges; its last edge is the one that
// left a single component.
//
// Error Conditions:
//   - ErrTooFewPoints : len(points) < 2.
//
// Steps:
//  1. Build all pairwise edges and heapify them (min-heap on (Weight, A, B)).
//  2. Pop the lightest edge. If its endpoints already share a root, skip it.
//     Otherwise union them and record the edge.
//  3. Stop as soon as NumRoots() == 1; remaining edges are never popped.
//
// Complexity: O(E + M log E) for M edges popped, E = N(N-1)/2. Memory: O(E).
func KruskalSweep(points []Point) ([]Edge, error) {
	// 1. Validate and heapify.
	n := len(points)
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	pq := edgePQ(PairwiseEdges(points))
	heap.Init(&pq)

	// 2. Sweep.
	d := dsu.New(n)
	used := make([]Edge, 0, n-1)
	popped := 0
	for d.NumRoots() > 1 && pq.Len() > 0 {
		e := heap.Pop(&pq).(Edge)
		popped++
		if !d.Union(e.A, e.B) {
			// Already connected: would close a cycle.
			continue
		}
		used = append(used, e)
	}

	// 3. The complete graph on n >= 2 points is always connected.
	spatialkit.Logger().Debug("cluster: kruskal sweep finished",
		"points", n, "popped", popped, "merges", len(used))

	return used, nil
}

// LastUnionEdge returns the edge whose union reduced the points to a single
// component during a Kruskal sweep. Equivalently, the heaviest edge of the
// minimum spanning tree under (Weight, A, B) ordering.
//
// Error Conditions:
//   - ErrTooFewPoints : len(points) < 2.
func LastUnionEdge(points []Point) (Edge, error) {
	used, err := KruskalSweep(points)
	if err != nil {
		return Edge{}, fmt.Errorf("last union edge: %w", err)
	}

	return used[len(used)-1], nil
}

// LastUnionXProduct returns X(A) * X(B) for the edge reported by
// LastUnionEdge.
func LastUnionXProduct(points []Point) (int64, error) {
	e, err := LastUnionEdge(points)
	if err != nil {
		return 0, err
	}

	return points[e.A].X * points[e.B].X, nil
}

// edgePQ implements heap.Interface for a min-heap of Edge ordered by (Weight, A, B).
type edgePQ []Edge

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less compares by Weight, then endpoints, so ties always pop in the same order.
func (pq edgePQ) Less(i, j int) bool { return pq[i].less(pq[j]) }

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends an Edge. Called by heap.Push.
func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(Edge)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
