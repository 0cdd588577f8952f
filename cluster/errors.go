// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"

	"github.com/katalvlaran/spatialkit"
)

var (
	// ErrNoPoints indicates an empty point set.
	ErrNoPoints = fmt.Errorf("cluster: point set is empty: %w", spatialkit.ErrInvalidInput)

	// ErrTooFewPoints indicates fewer than two points where a merge is required.
	ErrTooFewPoints = fmt.Errorf("cluster: at least two points are required: %w", spatialkit.ErrInvalidInput)

	// ErrBadK indicates a connection count outside [0, number of pairs].
	ErrBadK = fmt.Errorf("cluster: connection count out of range: %w", spatialkit.ErrInvalidInput)

	// ErrBadTop indicates Options.Top < 1.
	ErrBadTop = fmt.Errorf("cluster: Top must be at least 1: %w", spatialkit.ErrInvalidInput)
)
