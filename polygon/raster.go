// SPDX-License-Identifier: MIT

package polygon

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/spatialkit"
	"github.com/katalvlaran/spatialkit/dsu"
	"github.com/katalvlaran/spatialkit/grid"
)

// Raster is the compressed interior mask of one polygon: rows follow the Y
// axis, columns the X axis, and a cell is 1 when its tiles lie inside or on
// the outline. Read-only once Rasterize returns.
type Raster struct {
	xs, ys Axis
	mask   *grid.Grid[uint64]
}

// Rasterize validates a closed rectilinear polygon, draws its outline on a
// coordinate-compressed grid and fills the interior.
//
// Error Conditions:
//   - ErrTooFewVertices    : len(vertices) < 4.
//   - ErrDegenerateEdge    : two consecutive vertices (with wraparound) are equal.
//   - ErrNotRectilinear    : an edge is neither horizontal nor vertical.
//   - ErrAmbiguousTopology : the outline encloses zero or several interior
//     regions, or the one region it cuts off lies outside the loop.
//
// Steps:
//  1. Validate every edge, including last → first.
//  2. Compress X and Y coordinates into two Axis tables.
//  3. Mark outline cells with 1.
//  4. Flood-classify and promote the single interior component to 1.
//
// Complexity: O(V log V + R·C·α) with R, C = O(V). Memory: O(R·C).
func Rasterize(vertices []Vertex) (*Raster, error) {
	// 1. Validate.
	if err := validate(vertices); err != nil {
		return nil, err
	}

	// 2. Compress.
	xc := make([]int64, len(vertices))
	yc := make([]int64, len(vertices))
	for i, v := range vertices {
		xc[i], yc[i] = v.X, v.Y
	}
	r := &Raster{xs: NewAxis(xc), ys: NewAxis(yc)}
	mask, err := grid.New[uint64](r.ys.Len(), r.xs.Len())
	if err != nil {
		return nil, fmt.Errorf("polygon: allocate mask: %w", err)
	}
	r.mask = mask

	// 3. Draw.
	r.drawOutline(vertices)

	// 4. Classify.
	if err := r.fillInterior(vertices); err != nil {
		return nil, err
	}
	spatialkit.Logger().Debug("polygon: rasterized",
		"vertices", len(vertices), "rows", r.Rows(), "cols", r.Cols())

	return r, nil
}

// validate checks vertex count and that every edge is axis-aligned and non-empty.
func validate(vertices []Vertex) error {
	if len(vertices) < 4 {
		return fmt.Errorf("%w: got %d, need at least 4", ErrTooFewVertices, len(vertices))
	}
	for i, p := range vertices {
		q := vertices[(i+1)%len(vertices)]
		switch {
		case p == q:
			return fmt.Errorf("%w: vertex %d (%v) repeats", ErrDegenerateEdge, i, p)
		case p.X != q.X && p.Y != q.Y:
			return fmt.Errorf("%w: %v -> %v", ErrNotRectilinear, p, q)
		}
	}

	return nil
}

// drawOutline marks every compressed cell crossed by each edge.
func (r *Raster) drawOutline(vertices []Vertex) {
	for i, p := range vertices {
		q := vertices[(i+1)%len(vertices)]
		if p.X == q.X {
			col := r.xs.Index(p.X)
			r1, r2 := ordered(r.ys.Index(p.Y), r.ys.Index(q.Y))
			for row := r1; row <= r2; row++ {
				r.mask.Set(grid.Pos{Row: row, Col: col}, 1)
			}
		} else {
			row := r.ys.Index(p.Y)
			c1, c2 := ordered(r.xs.Index(p.X), r.xs.Index(q.X))
			for col := c1; col <= c2; col++ {
				r.mask.Set(grid.Pos{Row: row, Col: col}, 1)
			}
		}
	}
}

// fillInterior labels cells by connectivity and promotes the interior.
//
// Steps:
//  1. Forward sweep: union each cell with its already visited neighbors
//     (up and left) when both hold the same value; union non-boundary ring
//     cells with the outside sentinel (element rows·cols).
//  2. Collect the roots of the sentinel and of every boundary cell.
//  3. Every other root is an interior candidate; exactly one must exist.
//  4. Ray-cast one tile of the candidate against the vertex loop; a pocket
//     of outside sealed off by touching edges fails here.
//  5. Set every cell of that component to 1.
func (r *Raster) fillInterior(vertices []Vertex) error {
	m := r.mask
	outside := m.Len()
	d := dsu.New(m.Len() + 1)

	// 1. Sweep.
	for p := range m.Positions() {
		i, v := m.Index(p), m.At(p)
		for q := range m.Neighbors(p) {
			if q.Row > p.Row || q.Col > p.Col {
				continue
			}
			if m.At(q) == v {
				d.Union(m.Index(q), i)
			}
		}
		if v == 0 && m.OnBorder(p) {
			d.Union(outside, i)
		}
	}

	// 2. Known roots.
	known := map[int]struct{}{d.Find(outside): {}}
	for p := range m.Positions() {
		if m.At(p) == 1 {
			known[d.Find(m.Index(p))] = struct{}{}
		}
	}

	// 3. Count interior candidates.
	interior, candidates := -1, 0
	for root := range d.Roots() {
		if _, ok := known[root]; ok {
			continue
		}
		interior = root
		candidates++
	}
	spatialkit.Logger().Debug("polygon: flood classification",
		"components", d.NumRoots(), "outline_components", len(known)-1, "interior_components", candidates)
	if candidates != 1 {
		spatialkit.Logger().Warn("polygon: rejecting outline", "interior_components", candidates)
		return fmt.Errorf("%w: found %d", ErrAmbiguousTopology, candidates)
	}

	// 4. Confirm.
	cell := m.Pos(interior)
	tile := Vertex{X: r.xs.Value(cell.Col), Y: r.ys.Value(cell.Row)}
	if !encloses(vertices, tile) {
		spatialkit.Logger().Warn("polygon: rejecting outline", "sealed_pocket", tile)
		return fmt.Errorf("%w: region at %v is outside the loop", ErrAmbiguousTopology, tile)
	}

	// 5. Promote.
	for i := 0; i < m.Len(); i++ {
		if d.Find(i) == interior {
			m.Set(m.Pos(i), 1)
		}
	}

	return nil
}

// encloses reports whether tile t, which must not lie on the outline, is
// inside the loop: a ray toward +X crosses an odd number of vertical edges,
// each edge counted over the half-open range [low Y, high Y).
// Complexity: O(V).
func encloses(vertices []Vertex, t Vertex) bool {
	crossings := 0
	for i, p := range vertices {
		q := vertices[(i+1)%len(vertices)]
		if p.X != q.X || p.X <= t.X {
			continue
		}
		lo, hi := ordered(p.Y, q.Y)
		if t.Y >= lo && t.Y < hi {
			crossings++
		}
	}

	return crossings%2 == 1
}

// Rows returns the number of compressed rows (Y breakpoints).
func (r *Raster) Rows() int { return r.mask.Rows() }

// Cols returns the number of compressed columns (X breakpoints).
func (r *Raster) Cols() int { return r.mask.Cols() }

// XAxis returns the column breakpoints.
func (r *Raster) XAxis() Axis { return r.xs }

// YAxis returns the row breakpoints.
func (r *Raster) YAxis() Axis { return r.ys }

// Inside reports whether compressed cell (row, col) is inside or on the outline.
func (r *Raster) Inside(row, col int) bool {
	return r.mask.At(grid.Pos{Row: row, Col: col}) == 1
}

// CellArea returns how many tiles compressed cell (row, col) stands for.
func (r *Raster) CellArea(row, col int) uint64 {
	return r.ys.Span(row) * r.xs.Span(col)
}

// Mask returns a copy of the 0/1 interior mask.
func (r *Raster) Mask() *grid.Grid[uint64] {
	return r.mask.Clone()
}

// String draws the compressed mask, '#' inside and '.' outside, top row first.
func (r *Raster) String() string {
	return r.mask.Render(func(v uint64) rune {
		if v == 1 {
			return '#'
		}
		return '.'
	})
}

func ordered[T cmp.Ordered](a, b T) (T, T) {
	if a > b {
		return b, a
	}

	return a, b
}
