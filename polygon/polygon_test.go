package polygon_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spatialkit"
	"github.com/katalvlaran/spatialkit/polygon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Fixtures and brute-force oracle
//----------------------------------------------------------------------------//

// notched is an 8-vertex outline with a notch cut from its lower left.
var notched = []polygon.Vertex{
	{X: 7, Y: 1}, {X: 11, Y: 1}, {X: 11, Y: 7}, {X: 9, Y: 7},
	{X: 9, Y: 5}, {X: 2, Y: 5}, {X: 2, Y: 3}, {X: 7, Y: 3},
}

// castle is a 60×60 block with two tabs on each side.
var castle = []polygon.Vertex{
	{X: 10, Y: 30}, {X: 30, Y: 30}, {X: 30, Y: 10}, {X: 50, Y: 10},
	{X: 50, Y: 30}, {X: 70, Y: 30}, {X: 70, Y: 10}, {X: 90, Y: 10},
	{X: 90, Y: 30}, {X: 110, Y: 30}, {X: 110, Y: 50}, {X: 90, Y: 50},
	{X: 90, Y: 70}, {X: 110, Y: 70}, {X: 110, Y: 90}, {X: 90, Y: 90},
	{X: 90, Y: 110}, {X: 70, Y: 110}, {X: 70, Y: 90}, {X: 50, Y: 90},
	{X: 50, Y: 110}, {X: 30, Y: 110}, {X: 30, Y: 90}, {X: 10, Y: 90},
	{X: 10, Y: 70}, {X: 30, Y: 70}, {X: 30, Y: 50}, {X: 10, Y: 50},
}

// lShape covers x 1..6 × y 1..3 plus x 1..3 × y 4..6: 27 tiles.
var lShape = []polygon.Vertex{
	{X: 1, Y: 1}, {X: 6, Y: 1}, {X: 6, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 6}, {X: 1, Y: 6},
}

// rect covers x 2..9 × y 3..7: 40 tiles.
var rect = []polygon.Vertex{{X: 2, Y: 3}, {X: 9, Y: 3}, {X: 9, Y: 7}, {X: 2, Y: 7}}

// sealedC is a one-tile-thick C whose mouth tiles (5,10) and (6,10) touch:
// every tile of the loop is outline and the pocket it wraps is outside.
var sealedC = []polygon.Vertex{
	{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 6, Y: 10}, {X: 6, Y: 9}, {X: 9, Y: 9},
	{X: 9, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 9}, {X: 5, Y: 9}, {X: 5, Y: 10}, {X: 0, Y: 10},
}

// shift translates an outline by (dx, dy).
func shift(vs []polygon.Vertex, dx, dy int64) []polygon.Vertex {
	out := make([]polygon.Vertex, len(vs))
	for i, v := range vs {
		out[i] = polygon.Vertex{X: v.X + dx, Y: v.Y + dy}
	}
	return out
}

// insideTile reports whether tile (x, y) lies on the outline or strictly
// inside it, by direct geometry: an on-segment test, then ray casting
// to +X with half-open vertical edges.
func insideTile(vs []polygon.Vertex, x, y int64) bool {
	crossings := 0
	for i, p := range vs {
		q := vs[(i+1)%len(vs)]
		lx, hx := min(p.X, q.X), max(p.X, q.X)
		ly, hy := min(p.Y, q.Y), max(p.Y, q.Y)
		if x >= lx && x <= hx && y >= ly && y <= hy {
			return true // on the outline
		}
		if p.X == q.X && p.X > x && y >= ly && y < hy {
			crossings++
		}
	}
	return crossings%2 == 1
}

// bruteMaxInterior checks every vertex pair tile by tile.
func bruteMaxInterior(vs []polygon.Vertex) uint64 {
	var best uint64
	for i, p := range vs {
		for _, q := range vs[i+1:] {
			ok := true
			for x := min(p.X, q.X); ok && x <= max(p.X, q.X); x++ {
				for y := min(p.Y, q.Y); y <= max(p.Y, q.Y); y++ {
					if !insideTile(vs, x, y) {
						ok = false
						break
					}
				}
			}
			if ok {
				best = max(best, p.Area(q))
			}
		}
	}
	return best
}

// histogram builds a bar-chart outline on baseline y=1: bars of height >= 2
// and widths >= 1 (first bar >= 2), adjacent heights distinct. Its interior
// is always one connected region.
func histogram(r *rand.Rand, bars int) []polygon.Vertex {
	const base = 1
	x := int64(r.Intn(4))
	vs := []polygon.Vertex{{X: x, Y: base}}
	prev := int64(-1)
	for i := 0; i < bars; i++ {
		h := int64(2 + r.Intn(8))
		for h == prev {
			h = int64(2 + r.Intn(8))
		}
		w := int64(1 + r.Intn(5))
		if i == 0 {
			w++
		}
		vs = append(vs, polygon.Vertex{X: x, Y: base + h}, polygon.Vertex{X: x + w, Y: base + h})
		x += w
		prev = h
	}
	return append(vs, polygon.Vertex{X: x, Y: base})
}

// cellOf maps a tile coordinate to the compressed cell that covers it.
func cellOf(a polygon.Axis, v int64) int {
	return a.Index(v+1) - 1
}

//----------------------------------------------------------------------------//
// Axis
//----------------------------------------------------------------------------//

// TestAxis checks breakpoints, lookups and spans.
func TestAxis(t *testing.T) {
	a := polygon.NewAxis([]int64{7, 2, 7})
	require.Equal(t, 5, a.Len()) // 0 2 3 7 8
	assert.Equal(t, int64(0), a.Value(0))
	assert.Equal(t, int64(8), a.Value(4))

	assert.Equal(t, 3, a.Index(5))
	assert.Equal(t, 3, a.Index(7))
	assert.Equal(t, 5, a.Index(9))

	i, ok := a.Cell(7)
	assert.True(t, ok)
	assert.Equal(t, 3, i)
	_, ok = a.Cell(3) // 3 is a breakpoint but 4 is not
	assert.False(t, ok)
	_, ok = a.Cell(8) // last breakpoint
	assert.False(t, ok)
	_, ok = a.Cell(5)
	assert.False(t, ok)

	assert.Equal(t, uint64(2), a.Span(0))
	assert.Equal(t, uint64(4), a.Span(2))
	assert.Equal(t, uint64(0), a.Span(4))
}

//----------------------------------------------------------------------------//
// Rasterize
//----------------------------------------------------------------------------//

// TestRasterize_Errors covers every rejection path.
func TestRasterize_Errors(t *testing.T) {
	cases := []struct {
		name string
		vs   []polygon.Vertex
		err  error
		kind error
	}{
		{"TooFew", []polygon.Vertex{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}}, polygon.ErrTooFewVertices, spatialkit.ErrInvalidInput},
		{"Diagonal", []polygon.Vertex{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 1, Y: 3}}, polygon.ErrNotRectilinear, spatialkit.ErrInvalidInput},
		{"Repeat", []polygon.Vertex{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}, polygon.ErrDegenerateEdge, spatialkit.ErrInvalidInput},
		// Two tiles wide: everything is outline, nothing is interior.
		{"NoInterior", []polygon.Vertex{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 5}, {X: 1, Y: 5}}, polygon.ErrAmbiguousTopology, spatialkit.ErrAmbiguousTopology},
		// Two rooms joined by a corridor whose tiles are all outline.
		{"TwoRooms", []polygon.Vertex{
			{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 0}, {X: 12, Y: 0},
			{X: 12, Y: 6}, {X: 8, Y: 6}, {X: 8, Y: 3}, {X: 4, Y: 3}, {X: 4, Y: 6}, {X: 0, Y: 6},
		}, polygon.ErrAmbiguousTopology, spatialkit.ErrAmbiguousTopology},
		// The only region cut off from the outer ring lies outside the loop.
		{"SealedPocket", sealedC, polygon.ErrAmbiguousTopology, spatialkit.ErrAmbiguousTopology},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := polygon.Rasterize(tc.vs)
			assert.Nil(t, r)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, tc.kind)
		})
	}
}

// TestRasterize_SealedPocket checks the C-shaped loop is rejected rather
// than filled, and that searches over it propagate the failure.
func TestRasterize_SealedPocket(t *testing.T) {
	assert.False(t, insideTile(sealedC, 4, 4), "pocket tile is outside")
	assert.True(t, insideTile(sealedC, 5, 10), "mouth tile is outline")

	_, err := polygon.MaxInteriorRectangle(sealedC)
	assert.ErrorIs(t, err, polygon.ErrAmbiguousTopology)

	got, err := polygon.MaxCornerRectangle(sealedC)
	require.NoError(t, err, "the unconstrained search does not rasterize")
	assert.Equal(t, uint64(121), got)
}

// TestRasterize_SmallSquare checks the mask picture of a 3×3 tile square.
func TestRasterize_SmallSquare(t *testing.T) {
	r, err := polygon.Rasterize([]polygon.Vertex{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 3}})
	require.NoError(t, err)
	assert.Equal(t, 5, r.Rows())
	assert.Equal(t, 5, r.Cols())
	assert.Equal(t, ".....\n.###.\n.###.\n.###.\n.....\n", r.String())
	assert.True(t, r.Inside(2, 2), "center is interior")
	assert.False(t, r.Inside(0, 2))
	assert.Equal(t, uint64(1), r.CellArea(2, 2))
	assert.Equal(t, uint64(0), r.CellArea(4, 4), "last row and column have zero span")
}

// TestRasterize_MatchesOracle compares every tile's classification with
// direct geometry on fixed and random outlines.
func TestRasterize_MatchesOracle(t *testing.T) {
	shapes := [][]polygon.Vertex{
		notched, lShape, rect,
		shift(notched, -2, -1), shift(notched, -20, -3), shift(lShape, -9, 4),
	}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shapes = append(shapes, histogram(rng, 1+rng.Intn(6)))
	}

	for si, vs := range shapes {
		r, err := polygon.Rasterize(vs)
		require.NoError(t, err, "shape %d: %v", si, vs)
		xs, ys := r.XAxis(), r.YAxis()
		maxX, maxY := xs.Value(xs.Len()-1), ys.Value(ys.Len()-1)
		for x := xs.Value(0); x <= maxX; x++ {
			for y := ys.Value(0); y <= maxY; y++ {
				want := insideTile(vs, x, y)
				got := r.Inside(cellOf(ys, y), cellOf(xs, x))
				assert.Equal(t, want, got, "shape %d tile (%d,%d)", si, x, y)
			}
		}
	}
}

// TestRasterize_MaskIsCopy checks Mask does not alias internal state.
func TestRasterize_MaskIsCopy(t *testing.T) {
	r, err := polygon.Rasterize(rect)
	require.NoError(t, err)
	m := r.Mask()
	for p := range m.Positions() {
		m.Set(p, 0)
	}
	assert.True(t, r.Inside(cellOf(r.YAxis(), 5), cellOf(r.XAxis(), 5)))
}

//----------------------------------------------------------------------------//
// Index
//----------------------------------------------------------------------------//

// TestIndex_BoundingBox: a rectangle's own box is fully interior, the L's is not.
func TestIndex_BoundingBox(t *testing.T) {
	r, err := polygon.Rasterize(rect)
	require.NoError(t, err)
	ix := polygon.NewIndex(r)
	area, err := ix.InteriorArea(polygon.Vertex{X: 2, Y: 3}, polygon.Vertex{X: 9, Y: 7})
	require.NoError(t, err)
	assert.Equal(t, uint64(40), area)
	ok, err := ix.Contains(polygon.Vertex{X: 9, Y: 7}, polygon.Vertex{X: 2, Y: 3})
	require.NoError(t, err)
	assert.True(t, ok, "corner order must not matter")

	r, err = polygon.Rasterize(lShape)
	require.NoError(t, err)
	ix = polygon.NewIndex(r)
	area, err = ix.InteriorArea(polygon.Vertex{X: 1, Y: 1}, polygon.Vertex{X: 6, Y: 6})
	require.NoError(t, err)
	assert.Equal(t, uint64(27), area)
	ok, err = ix.Contains(polygon.Vertex{X: 1, Y: 1}, polygon.Vertex{X: 6, Y: 6})
	require.NoError(t, err)
	assert.False(t, ok, "concave outline cannot contain its bounding box")
}

// TestIndex_MatchesOracle compares InteriorArea with per-tile counting for
// every pair of vertex coordinates, including mixed X/Y corners.
func TestIndex_MatchesOracle(t *testing.T) {
	for _, vs := range [][]polygon.Vertex{notched, lShape} {
		r, err := polygon.Rasterize(vs)
		require.NoError(t, err)
		ix := polygon.NewIndex(r)
		for _, a := range vs {
			for _, b := range vs {
				p1 := polygon.Vertex{X: a.X, Y: b.Y}
				p2 := polygon.Vertex{X: b.X, Y: a.Y}
				var want uint64
				for x := min(p1.X, p2.X); x <= max(p1.X, p2.X); x++ {
					for y := min(p1.Y, p2.Y); y <= max(p1.Y, p2.Y); y++ {
						if insideTile(vs, x, y) {
							want++
						}
					}
				}
				got, err := ix.InteriorArea(p1, p2)
				require.NoError(t, err)
				assert.Equal(t, want, got, "rectangle %v..%v", p1, p2)
			}
		}
	}
}

// TestIndex_OffGrid rejects coordinates that are not vertex coordinates.
func TestIndex_OffGrid(t *testing.T) {
	r, err := polygon.Rasterize(rect)
	require.NoError(t, err)
	ix := polygon.NewIndex(r)

	_, err = ix.InteriorArea(polygon.Vertex{X: 2, Y: 3}, polygon.Vertex{X: 5, Y: 7})
	assert.ErrorIs(t, err, polygon.ErrOffGrid)
	_, err = ix.Contains(polygon.Vertex{X: 3, Y: 3}, polygon.Vertex{X: 9, Y: 7}) // 3 = 2+1, but 4 is absent
	assert.ErrorIs(t, err, polygon.ErrOffGrid)
	assert.ErrorIs(t, err, spatialkit.ErrInvalidInput)
}

//----------------------------------------------------------------------------//
// Searches
//----------------------------------------------------------------------------//

// TestMaxCornerRectangle checks the unconstrained search.
func TestMaxCornerRectangle(t *testing.T) {
	got, err := polygon.MaxCornerRectangle(notched)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), got)

	_, err = polygon.MaxCornerRectangle(notched[:1])
	assert.ErrorIs(t, err, polygon.ErrTooFewVertices)
}

// TestMaxInteriorRectangle_Known checks fixed outlines with known answers.
func TestMaxInteriorRectangle_Known(t *testing.T) {
	cases := []struct {
		name string
		vs   []polygon.Vertex
		want uint64
	}{
		{"Notched", notched, 24},
		{"NotchedAtOrigin", shift(notched, -2, -1), 24},
		{"NotchedNegative", shift(notched, -20, -3), 24},
		{"NotchedNegativeX", shift(notched, -20, 0), 24},
		{"Castle", castle, 61 * 61},
		{"L", lShape, 18},
		{"Rect", rect, 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := polygon.MaxInteriorRectangle(tc.vs)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestMaxInteriorRectangle_MatchesBruteForce runs random bar-chart outlines
// against tile-by-tile checking.
func TestMaxInteriorRectangle_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 30; i++ {
		vs := histogram(rng, 1+rng.Intn(7))
		got, err := polygon.MaxInteriorRectangle(vs)
		require.NoError(t, err, "outline %v", vs)
		assert.Equal(t, bruteMaxInterior(vs), got, "outline %v", vs)
	}
	assert.Equal(t, uint64(18), bruteMaxInterior(lShape), "oracle sanity")
}

// TestMaxInteriorRectangle_Error propagates rasterization failures.
func TestMaxInteriorRectangle_Error(t *testing.T) {
	_, err := polygon.MaxInteriorRectangle([]polygon.Vertex{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 1, Y: 3}})
	assert.ErrorIs(t, err, polygon.ErrNotRectilinear)
}
