package tui

import (
	"math"

	"github.com/mcoot/guavagrams/internal/grid"
)

// cellWidth is the number of screen columns one board cell occupies
const cellWidth = 2

// Camera maps a screen region onto the board, centred on a coordinate
type Camera struct {
	Cols, Rows int
}

// NewCamera sizes a camera for a region of the given screen width and height
func NewCamera(width, height int) Camera {
	return Camera{Cols: max(width/cellWidth, 0), Rows: max(height, 0)}
}

// Centre returns the cell that shows the camera's focus
func (c Camera) Centre() (col, row int) {
	return c.Cols / 2, c.Rows / 2
}

// At returns the board coordinate shown at a cell of the camera. Cells
// beyond the edge of the coordinate space show nothing.
func (c Camera) At(focus grid.Coordinate, col, row int) (grid.Coordinate, bool) {
	cc, cr := c.Centre()
	dx := col - cc
	dy := cr - row
	if dx < math.MinInt8 || dx > math.MaxInt8 || dy < math.MinInt8 || dy > math.MaxInt8 {
		return grid.Coordinate{}, false
	}
	coord, overflowed := focus.OverflowingAdd(grid.Coordinate{X: int8(dx), Y: int8(dy)})
	return coord, !overflowed
}
