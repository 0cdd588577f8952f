// SPDX-License-Identifier: MIT

package cluster

import "fmt"

// Point is an integer point in 3D space. Use Z = 0 for planar input.
// Coordinates are expected to fit in 32 bits so squared distances fit in uint64.
type Point struct {
	X, Y, Z int64
}

// String renders the point as "x,y,z".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// DistSq returns the squared Euclidean distance between p and q.
func (p Point) DistSq(q Point) uint64 {
	dx := absDiff(p.X, q.X)
	dy := absDiff(p.Y, q.Y)
	dz := absDiff(p.Z, q.Z)

	return dx*dx + dy*dy + dz*dz
}

func absDiff(a, b int64) uint64 {
	if a > b {
		return uint64(a - b)
	}

	return uint64(b - a)
}

// Edge joins points A and B (indices into the input slice, A < B) with
// Weight = squared distance.
type Edge struct {
	Weight uint64
	A, B   int
}

// less orders edges by (Weight, A, B).
func (e Edge) less(o Edge) bool {
	if e.Weight != o.Weight {
		return e.Weight < o.Weight
	}
	if e.A != o.A {
		return e.A < o.A
	}

	return e.B < o.B
}

// Options configures TopComponentsProduct.
//
// Fields:
//   - Top — how many of the largest components are multiplied together.
//     If fewer components exist, all of them are used.
type Options struct {
	Top int
}

// DefaultOptions returns Options{Top: 3}.
func DefaultOptions() Options {
	return Options{Top: 3}
}
