// SPDX-License-Identifier: MIT

package polygon

import (
	"fmt"

	"github.com/katalvlaran/spatialkit"
)

var (
	// ErrTooFewVertices indicates the vertex list cannot describe the requested shape.
	ErrTooFewVertices = fmt.Errorf("polygon: too few vertices: %w", spatialkit.ErrInvalidInput)

	// ErrNotRectilinear indicates an edge that is neither horizontal nor vertical.
	ErrNotRectilinear = fmt.Errorf("polygon: edge is not axis-aligned: %w", spatialkit.ErrInvalidInput)

	// ErrDegenerateEdge indicates two consecutive identical vertices.
	ErrDegenerateEdge = fmt.Errorf("polygon: zero-length edge: %w", spatialkit.ErrInvalidInput)

	// ErrOffGrid indicates a query coordinate that is not a vertex coordinate of the polygon.
	ErrOffGrid = fmt.Errorf("polygon: coordinate is not on the compressed grid: %w", spatialkit.ErrInvalidInput)

	// ErrAmbiguousTopology indicates the outline encloses zero or several separate interior regions.
	ErrAmbiguousTopology = fmt.Errorf("polygon: outline does not enclose exactly one interior region: %w", spatialkit.ErrAmbiguousTopology)
)
