// SPDX-License-Identifier: MIT

package polygon

import (
	"fmt"

	"github.com/katalvlaran/spatialkit"
)

// MaxCornerRectangle returns the largest tile area of a rectangle whose
// opposite corners are two of the given vertices. The polygon shape is not
// consulted; any point list with at least two entries is accepted.
// Complexity: O(V²).
func MaxCornerRectangle(vertices []Vertex) (uint64, error) {
	if len(vertices) < 2 {
		return 0, fmt.Errorf("%w: got %d, need at least 2", ErrTooFewVertices, len(vertices))
	}
	var best uint64
	for i, p := range vertices {
		for _, q := range vertices[i+1:] {
			best = max(best, p.Area(q))
		}
	}

	return best, nil
}

// MaxInteriorRectangle returns the largest tile area of a rectangle whose
// opposite corners are two vertices of the polygon and whose every tile lies
// inside or on the polygon.
//
// Steps:
//  1. Rasterize the polygon and build its Index.
//  2. For every vertex pair, skip pairs that cannot beat the current best,
//     otherwise test containment in O(1).
//
// Errors are those of Rasterize.
// Complexity: O(V² log V) after rasterization.
func MaxInteriorRectangle(vertices []Vertex) (uint64, error) {
	r, err := Rasterize(vertices)
	if err != nil {
		return 0, err
	}
	ix := NewIndex(r)

	var best uint64
	for i, p := range vertices {
		for _, q := range vertices[i+1:] {
			area := p.Area(q)
			if area <= best {
				continue
			}
			ok, err := ix.Contains(p, q)
			if err != nil {
				return 0, err
			}
			if ok {
				best = area
			}
		}
	}
	spatialkit.Logger().Debug("polygon: max interior rectangle", "vertices", len(vertices), "area", best)

	return best, nil
}
