// SPDX-License-Identifier: MIT

// Package grid provides a generic, row-major rectangular container addressed
// by (row, col), plus orthogonal neighbor enumeration.
//
// What:
//
//   - Grid[T] stores Rows()×Cols() values in one contiguous slice.
//   - Index/Pos convert between a Pos and its row-major offset, so callers can
//     key other flat structures (e.g. a dsu.DisjointSet) by cell.
//   - Neighbors enumerates the in-bounds N, E, S, W neighbors of a cell.
//
// Why:
//
//   - Rasterized geometry: polygon/ draws outlines into a Grid[uint64] and
//     reads it back as an interior mask and a prefix-sum table.
//   - Puzzle boards of any cell type, without committing to [][]T layouts.
//
// Complexity:
//
//   - At, Set, Index, Pos: O(1).
//   - Neighbors: O(1) per yielded cell.
//
// Errors:
//
//   - ErrEmptyGrid: zero (or negative) rows or columns.
//
// Out-of-range Pos passed to At/Set panics, like a slice index.
package grid
