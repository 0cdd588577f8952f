// SPDX-License-Identifier: MIT

package spatialkit

import "errors"

// Error taxonomy shared by every sub-package. Package-level sentinels in
// dsu/, cluster/ and polygon/ wrap one of these, so callers may match either
// the specific sentinel or the category:
//
//	errors.Is(err, polygon.ErrNotRectilinear)   // specific
//	errors.Is(err, spatialkit.ErrInvalidInput)  // category
var (
	// ErrInvalidInput marks precondition violations: empty or undersized
	// inputs, non-rectilinear polygons, out-of-range parameters.
	ErrInvalidInput = errors.New("spatialkit: invalid input")

	// ErrAmbiguousTopology marks inputs that pass validation but break a
	// geometric assumption, e.g. a polygon enclosing zero or several
	// separate interior regions.
	ErrAmbiguousTopology = errors.New("spatialkit: ambiguous topology")
)
