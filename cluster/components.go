// SPDX-License-Identifier: MIT

package cluster

import (
	"github.com/katalvlaran/spatialkit"
	"github.com/katalvlaran/spatialkit/dsu"
)

// TopComponentsProduct joins the k closest pairs of points and returns the
// product of the opts.Top largest resulting component sizes.
//
// Error Conditions:
//   - ErrNoPoints : points is empty.
//   - ErrBadTop   : opts.Top < 1.
//   - ErrBadK     : k < 0 or k > len(points)*(len(points)-1)/2.
//
// Steps:
//  1. Validate; nil opts means DefaultOptions().
//  2. Build all pairwise edges and select the k smallest (no full sort).
//  3. Union every selected edge into a fresh DisjointSet of len(points).
//     Edges whose endpoints are already joined still count toward k.
//  4. Multiply the Top largest set sizes; with fewer sets, multiply all.
//
// Complexity: O(N²) expected time, O(N²) memory.
func TopComponentsProduct(points []Point, k int, opts *Options) (uint64, error) {
	// 1. Validate.
	if len(points) == 0 {
		return 0, ErrNoPoints
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Top < 1 {
		return 0, ErrBadTop
	}
	n := len(points)
	if k < 0 || k > n*(n-1)/2 {
		return 0, ErrBadK
	}

	// 2. k closest pairs.
	closest := SelectSmallest(PairwiseEdges(points), k)

	// 3. Join them.
	d := dsu.New(n)
	for _, e := range closest {
		d.Union(e.A, e.B)
	}

	// 4. Multiply the largest sizes.
	product := uint64(1)
	for _, size := range d.TopSizes(o.Top) {
		product *= uint64(size)
	}
	spatialkit.Logger().Debug("cluster: components after k unions",
		"k", k, "components", d.NumRoots(), "sizes", d.String(), "product", product)

	return product, nil
}
