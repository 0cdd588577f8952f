// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Grid is a rectangular row-major array of T. Cells are mutated in place by
// the owner; the type does no locking.
type Grid[T any] struct {
	rows, cols int
	data       []T
}

// New allocates a rows×cols grid of zero values.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(rows×cols) time and memory.
func New[T any](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns Rows()*Cols().
func (g *Grid[T]) Len() int { return len(g.data) }

// InBounds reports whether p lies within the grid.
func (g *Grid[T]) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Index maps p to its row-major offset: Row*Cols + Col.
// Panics if p is out of bounds.
func (g *Grid[T]) Index(p Pos) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: position %v out of range for %dx%d grid", p, g.rows, g.cols))
	}

	return p.Row*g.cols + p.Col
}

// Pos converts a row-major offset back to a position.
func (g *Grid[T]) Pos(idx int) Pos {
	return Pos{Row: idx / g.cols, Col: idx % g.cols}
}

// At returns the value stored at p.
func (g *Grid[T]) At(p Pos) T {
	return g.data[g.Index(p)]
}

// Set stores v at p.
func (g *Grid[T]) Set(p Pos, v T) {
	g.data[g.Index(p)] = v
}

// Clone returns an independent copy.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)

	return &Grid[T]{rows: g.rows, cols: g.cols, data: data}
}

// Positions yields every position in row-major order.
func (g *Grid[T]) Positions() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				if !yield(Pos{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// Neighbors yields the in-bounds orthogonal neighbors of p, clockwise from north.
func (g *Grid[T]) Neighbors(p Pos) iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for _, d := range offsets4 {
			q := Pos{Row: p.Row + d[0], Col: p.Col + d[1]}
			if !g.InBounds(q) {
				continue
			}
			if !yield(q) {
				return
			}
		}
	}
}

// OnBorder reports whether p lies on the outermost ring of cells.
func (g *Grid[T]) OnBorder(p Pos) bool {
	return p.Row == 0 || p.Col == 0 || p.Row == g.rows-1 || p.Col == g.cols-1
}

// Render draws the grid one line per row, mapping each value through cell.
func (g *Grid[T]) Render(cell func(T) rune) string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for _, v := range g.data[r*g.cols : (r+1)*g.cols] {
			sb.WriteRune(cell(v))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
