// SPDX-License-Identifier: MIT

package polygon

import "fmt"

// Vertex is one polygon corner in tile coordinates.
type Vertex struct {
	X, Y int64
}

// String renders the vertex as "x,y".
func (v Vertex) String() string {
	return fmt.Sprintf("%d,%d", v.X, v.Y)
}

// Area returns the number of tiles in the rectangle with opposite corners v
// and o, both included: (|dx|+1)·(|dy|+1).
func (v Vertex) Area(o Vertex) uint64 {
	return (absDiff(v.X, o.X) + 1) * (absDiff(v.Y, o.Y) + 1)
}

func absDiff(a, b int64) uint64 {
	if a > b {
		return uint64(a - b)
	}

	return uint64(b - a)
}
