// SPDX-License-Identifier: MIT

// Package cluster groups integer points by proximity using a disjoint-set
// over the complete graph of pairwise squared distances.
//
// What & Why
//
//   - Every unordered pair of points is an Edge weighted by squared Euclidean
//     distance. Squared integer distances order pairs exactly like true
//     distances, with no floating point and no rounding.
//   - Two queries are provided on top of dsu.DisjointSet:
//
//   - TopComponentsProduct(points, k, opts)
//     Join the k closest pairs, then multiply the sizes of the opts.Top
//     (default 3) largest resulting groups.
//
//   - LastUnionEdge(points)
//     Kruskal sweep: join pairs in increasing distance, skipping pairs that are
//     already connected, until a single group remains. The edge that made the
//     final merge is the longest edge of the minimum spanning tree.
//
// Algorithms
//
//   - k closest pairs: partial selection (quickselect, median-of-three pivot),
//     O(E) expected, instead of a full O(E log E) sort.
//   - Kruskal sweep: container/heap min-heap built in O(E), one Pop per edge
//     examined; stops as soon as NumRoots() == 1.
//
// Determinism
//
//	Edges are totally ordered by (Weight, A, B). Equal-weight pairs are
//	therefore always taken in the same order and every result is a pure
//	function of the input slice.
//
// Error Conditions
//
//   - ErrNoPoints      : empty input to TopComponentsProduct.
//   - ErrBadK          : k < 0 or k greater than the number of pairs.
//   - ErrBadTop        : Options.Top < 1.
//   - ErrTooFewPoints  : fewer than two points for a Kruskal sweep.
//
// All of them wrap spatialkit.ErrInvalidInput.
//
// Complexity: O(N²) edges are materialized for N points, so memory is O(N²).
package cluster
