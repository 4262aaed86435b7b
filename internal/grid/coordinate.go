// Package grid is the bounded board engine: the coordinate space, the fixed
// capacity board store, the word scanner and the connectivity check.
package grid

import (
	"fmt"
	"math"
)

// Coordinate is a logical board position. The origin sits at the centre of
// the board and Y increases upward.
type Coordinate struct {
	X, Y int8
}

// Index is the physical address of a cell in a Board's backing array.
// Row 0 is the top of the board.
type Index struct {
	Col, Row uint8
}

// Unit vectors for cursor movement and neighbour searches
var (
	Up    = Coordinate{X: 0, Y: 1}
	Down  = Coordinate{X: 0, Y: -1}
	Left  = Coordinate{X: -1, Y: 0}
	Right = Coordinate{X: 1, Y: 0}
)

// cardinals lists the four neighbour offsets
var cardinals = [4]Coordinate{Right, Left, Up, Down}

const (
	colBias uint8 = 128
	rowBias uint8 = 127
)

// Index maps the coordinate onto storage. The arithmetic wraps on the uint8
// ring, so every coordinate has exactly one index.
func (c Coordinate) Index() Index {
	return Index{
		Col: colBias + uint8(c.X),
		Row: rowBias - uint8(c.Y),
	}
}

// Coordinate is the inverse of Coordinate.Index
func (i Index) Coordinate() Coordinate {
	return Coordinate{
		X: int8(i.Col - colBias),
		Y: int8(rowBias - i.Row),
	}
}

// Add sums component-wise, clamping at the int8 bounds
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{
		X: clamp(int16(c.X) + int16(d.X)),
		Y: clamp(int16(c.Y) + int16(d.Y)),
	}
}

// Sub subtracts component-wise, clamping at the int8 bounds
func (c Coordinate) Sub(d Coordinate) Coordinate {
	return Coordinate{
		X: clamp(int16(c.X) - int16(d.X)),
		Y: clamp(int16(c.Y) - int16(d.Y)),
	}
}

// OverflowingAdd returns the wrapped sum and whether either component left
// the int8 range. Neighbour searches treat an overflow as "no neighbour".
func (c Coordinate) OverflowingAdd(d Coordinate) (Coordinate, bool) {
	x := int16(c.X) + int16(d.X)
	y := int16(c.Y) + int16(d.Y)
	overflowed := x != int16(int8(x)) || y != int16(int8(y))
	return Coordinate{X: int8(x), Y: int8(y)}, overflowed
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

func (i Index) String() string {
	return fmt.Sprintf("[%d, %d]", i.Col, i.Row)
}

func clamp(v int16) int8 {
	switch {
	case v > math.MaxInt8:
		return math.MaxInt8
	case v < math.MinInt8:
		return math.MinInt8
	}
	return int8(v)
}
