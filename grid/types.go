// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Row/col deltas of the orthogonal neighbors, clockwise from north.
var offsets4 = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Pos addresses one cell.
type Pos struct {
	Row, Col int
}

// String renders the position as "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
