// SPDX-License-Identifier: MIT

package polygon

import (
	"slices"
	"sort"
)

// Axis is a sorted, deduplicated list of breakpoints along one coordinate.
// Cell i spans [Value(i), Value(i+1)); the last cell has zero span.
// Immutable after construction.
type Axis struct {
	values []int64
}

// NewAxis builds an axis from 0, every coordinate c and every c+1.
// Complexity: O(n log n).
func NewAxis(coords []int64) Axis {
	values := make([]int64, 0, 2*len(coords)+1)
	values = append(values, 0)
	for _, c := range coords {
		values = append(values, c, c+1)
	}
	slices.Sort(values)

	return Axis{values: slices.Compact(values)}
}

// Len returns the number of breakpoints (and cells).
func (a Axis) Len() int { return len(a.values) }

// Value returns breakpoint i.
func (a Axis) Value(i int) int64 { return a.values[i] }

// Index returns the first breakpoint index whose value is not less than v
// (Len() if v exceeds every breakpoint).
// Complexity: O(log n).
func (a Axis) Index(v int64) int {
	return sort.Search(len(a.values), func(i int) bool { return a.values[i] >= v })
}

// Cell returns the index of the cell that covers exactly the unit [v, v+1).
// ok is false unless both v and v+1 are breakpoints, which holds for every
// vertex coordinate the axis was built from.
func (a Axis) Cell(v int64) (i int, ok bool) {
	i = a.Index(v)
	if i+1 >= len(a.values) || a.values[i] != v || a.values[i+1] != v+1 {
		return 0, false
	}

	return i, true
}

// Span returns the width of cell i in tiles: Value(i+1)-Value(i), or 0 for
// the last cell.
func (a Axis) Span(i int) uint64 {
	if i+1 >= len(a.values) {
		return 0
	}

	return uint64(a.values[i+1] - a.values[i])
}
