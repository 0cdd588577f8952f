// SPDX-License-Identifier: MIT

// Package dsu provides a fixed-size disjoint-set (union-find) structure over
// integer elements 0..N-1.
//
// What & Why
//
//   - A disjoint-set tracks a partition of elements into non-overlapping sets
//     and answers two questions fast: "which set is x in?" (Find) and "merge
//     the sets of x and y" (Union).
//   - It is the engine behind Kruskal-style sweeps (cluster/) and flood
//     classification of rasterized polygons (polygon/).
//
// Guarantees
//
//   - Path compression (halving) on every Find plus union by size keep the
//     amortized cost of each operation near O(1) (inverse Ackermann).
//   - Union by size is chosen over union by rank because callers also want the
//     final set sizes; Size and Roots expose them without extra bookkeeping.
//   - NumRoots is maintained incrementally: it starts at N and drops by exactly
//     one per successful Union.
//
// Preconditions
//
//	Elements are indices. Passing an index outside [0, Len()) is a programmer
//	error and panics, in the same way a slice index would. Validate untrusted
//	input before it reaches this package.
//
// Example:
//
//	d := dsu.New(4)
//	d.Union(0, 1)
//	d.Union(2, 3)
//	fmt.Println(d.NumRoots()) // 2
package dsu
