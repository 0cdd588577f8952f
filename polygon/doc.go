// SPDX-License-Identifier: MIT

// Package polygon rasterizes closed rectilinear polygons onto a
// coordinate-compressed grid and answers "is this axis-aligned rectangle
// entirely inside?" in O(1).
//
// Coordinates are tile positions: a vertex (x, y) names one unit tile, and
// the outline passes through every tile between consecutive vertices. A
// rectangle with corners p1, p2 covers (|dx|+1)·(|dy|+1) tiles.
//
// Pipeline
//
//  1. Compress: each axis keeps 0, every vertex coordinate c, and c+1. The
//     grid therefore has O(V) rows and columns however large the
//     coordinates are, and every compressed cell stands for a rectangle of
//     tiles that share one inside/outside status.
//  2. Draw: cells on each polygon edge are marked 1 (boundary).
//  3. Classify: a dsu.DisjointSet over all cells plus one "outside" sentinel
//     joins equal-valued neighbors and ties non-boundary cells on the outer
//     ring to the sentinel. What is neither outside nor boundary must be one
//     single interior component; its cells are marked 1 as well.
//  4. Index: a 2D prefix-sum table holds tile areas (not cell counts) of
//     marked cells, so any rectangle sum is four lookups.
//
// Design notes
//
//   - The interior mask and the prefix table are separate buffers. The mask
//     stays inspectable (Raster.Mask, Raster.String) after NewIndex.
//   - The polygon is a vertex slice iterated pairwise with wraparound; the
//     last vertex connects back to the first.
//   - The interior is found by counting components, never by elimination:
//     zero or several interior regions are reported as ErrAmbiguousTopology.
//
// Error Conditions
//
//   - ErrTooFewVertices : fewer than 4 vertices (or 2 for MaxCornerRectangle).
//   - ErrNotRectilinear : an edge that is neither horizontal nor vertical.
//   - ErrDegenerateEdge : two consecutive vertices are equal.
//   - ErrOffGrid        : a query coordinate is not a vertex coordinate.
//   - ErrAmbiguousTopology : zero or several interior regions.
//
// The first four wrap spatialkit.ErrInvalidInput, the last wraps
// spatialkit.ErrAmbiguousTopology.
package polygon
