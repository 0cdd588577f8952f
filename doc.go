// SPDX-License-Identifier: MIT

// Package spatialkit is a small in-memory toolkit for connectivity and
// grid geometry over fixed integer inputs: union-find, point clustering
// and rectilinear polygon area queries.
//
// 🚀 What is inside?
//
//	dsu/     — disjoint-set union-find (path compression, union by size)
//	grid/    — generic row-major Grid[T] with orthogonal neighbor enumeration
//	cluster/ — nearest-neighbor clustering: k smallest edges, Kruskal sweep
//	polygon/ — coordinate compression, outline rasterization, flood
//	           classification and O(1) rectangle containment queries
//
// ✨ Guarantees:
//
//   - Deterministic: every result is a pure function of the input.
//   - Integer arithmetic only: squared distances and areas never touch float64.
//   - Explicit failures: bad input wraps ErrInvalidInput, ill-formed polygons
//     wrap ErrAmbiguousTopology. Match them with errors.Is.
//   - Quiet by default: nothing is logged until SetLogger is called.
//
// Quick ASCII example of a rectilinear polygon the polygon package accepts:
//
//	    ┌───┐
//	    │   └───┐
//	    └───────┘
//
//	go get github.com/katalvlaran/spatialkit
package spatialkit
