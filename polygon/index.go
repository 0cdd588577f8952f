// SPDX-License-Identifier: MIT

package polygon

import (
	"fmt"

	"github.com/katalvlaran/spatialkit/grid"
)

// Index answers rectangle-area queries over a rasterized polygon in O(1).
// sums[r][c] holds the tile area of every inside cell in rows 0..r and
// columns 0..c.
type Index struct {
	xs, ys Axis
	sums   *grid.Grid[uint64]
}

// NewIndex builds the 2D prefix-sum table of r's mask, weighted by each
// cell's true tile area:
//
//	S[r][c] = area(r,c)·mask(r,c) + S[r][c-1] + S[r-1][c] − S[r-1][c-1]
//
// with missing terms treated as 0 on the first row and column.
// Complexity: O(R·C) time and memory.
func NewIndex(r *Raster) *Index {
	sums := r.mask.Clone()
	for p := range sums.Positions() {
		v := r.mask.At(p) * r.CellArea(p.Row, p.Col)
		if p.Col > 0 {
			v += sums.At(grid.Pos{Row: p.Row, Col: p.Col - 1})
		}
		if p.Row > 0 {
			v += sums.At(grid.Pos{Row: p.Row - 1, Col: p.Col})
		}
		if p.Row > 0 && p.Col > 0 {
			v -= sums.At(grid.Pos{Row: p.Row - 1, Col: p.Col - 1})
		}
		sums.Set(p, v)
	}

	return &Index{xs: r.xs, ys: r.ys, sums: sums}
}

// InteriorArea returns how many tiles of the rectangle spanned by p1 and p2
// lie inside or on the polygon.
//
// Both coordinates of both corners must be vertex coordinates of the polygon
// (any mix of X from one vertex and Y from another is fine); otherwise
// ErrOffGrid is returned.
//
// Complexity: O(log V) for the axis lookups, O(1) for the sum.
func (ix *Index) InteriorArea(p1, p2 Vertex) (uint64, error) {
	c1, ok1 := ix.xs.Cell(p1.X)
	c2, ok2 := ix.xs.Cell(p2.X)
	r1, ok3 := ix.ys.Cell(p1.Y)
	r2, ok4 := ix.ys.Cell(p2.Y)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return 0, fmt.Errorf("%w: rectangle %v .. %v", ErrOffGrid, p1, p2)
	}
	c1, c2 = ordered(c1, c2)
	r1, r2 = ordered(r1, r2)

	// S(r2,c2) + S(r1-1,c1-1) − S(r1-1,c2) − S(r2,c1-1); adding first keeps
	// the unsigned intermediate non-negative.
	sum := ix.at(r2, c2)
	if r1 > 0 && c1 > 0 {
		sum += ix.at(r1-1, c1-1)
	}
	if r1 > 0 {
		sum -= ix.at(r1-1, c2)
	}
	if c1 > 0 {
		sum -= ix.at(r2, c1-1)
	}

	return sum, nil
}

// Contains reports whether every tile of the rectangle spanned by p1 and p2
// is inside or on the polygon. Same preconditions as InteriorArea.
func (ix *Index) Contains(p1, p2 Vertex) (bool, error) {
	got, err := ix.InteriorArea(p1, p2)
	if err != nil {
		return false, err
	}

	return got == p1.Area(p2), nil
}

func (ix *Index) at(row, col int) uint64 {
	return ix.sums.At(grid.Pos{Row: row, Col: col})
}
