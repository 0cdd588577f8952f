// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/spatialkit"
)

// ErrEmptyGrid indicates a grid with no rows or no columns.
var ErrEmptyGrid = fmt.Errorf("grid: grid must have at least one row and one column: %w", spatialkit.ErrInvalidInput)
