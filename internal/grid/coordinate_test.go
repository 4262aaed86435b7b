package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateToIndexKnownValues(t *testing.T) {
	tests := []struct {
		coordinate Coordinate
		index      Index
	}{
		{Coordinate{0, 0}, Index{128, 127}},
		{Coordinate{-128, -128}, Index{0, 255}},
		{Coordinate{127, 127}, Index{255, 0}},
		{Coordinate{-1, 1}, Index{127, 126}},
		{Coordinate{1, -1}, Index{129, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.coordinate.String(), func(t *testing.T) {
			assert.Equal(t, tt.index, tt.coordinate.Index())
			assert.Equal(t, tt.coordinate, tt.index.Coordinate())
		})
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	for x := math.MinInt8; x <= math.MaxInt8; x++ {
		for y := math.MinInt8; y <= math.MaxInt8; y++ {
			c := Coordinate{X: int8(x), Y: int8(y)}
			if got := c.Index().Coordinate(); got != c {
				require.Failf(t, "round trip", "%v came back as %v", c, got)
			}
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	seen := make(map[Coordinate]bool, Cells)
	for col := range Width {
		for row := range Height {
			i := Index{Col: uint8(col), Row: uint8(row)}
			c := i.Coordinate()
			if got := c.Index(); got != i {
				require.Failf(t, "round trip", "%v came back as %v", i, got)
			}
			seen[c] = true
		}
	}
	assert.Len(t, seen, Cells, "conversion must be a bijection")
}

func TestUpMovesTowardsTopRow(t *testing.T) {
	origin := Coordinate{}
	assert.Less(t, origin.Add(Up).Index().Row, origin.Index().Row)
	assert.Greater(t, origin.Add(Right).Index().Col, origin.Index().Col)
}

func TestAddSaturates(t *testing.T) {
	tests := []struct {
		name     string
		c, d     Coordinate
		expected Coordinate
	}{
		{"inside", Coordinate{1, 2}, Coordinate{3, -4}, Coordinate{4, -2}},
		{"right edge", Coordinate{127, 0}, Right, Coordinate{127, 0}},
		{"left edge", Coordinate{-128, 0}, Left, Coordinate{-128, 0}},
		{"top edge", Coordinate{0, 127}, Up, Coordinate{0, 127}},
		{"bottom edge", Coordinate{0, -128}, Down, Coordinate{0, -128}},
		{"large positive", Coordinate{100, 100}, Coordinate{100, 100}, Coordinate{127, 127}},
		{"large negative", Coordinate{-100, -100}, Coordinate{-100, -100}, Coordinate{-128, -128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.c.Add(tt.d))
		})
	}
}

func TestSubSaturates(t *testing.T) {
	assert.Equal(t, Coordinate{-128, 127}, Coordinate{-128, 127}.Sub(Coordinate{1, -1}))
	assert.Equal(t, Coordinate{127, -128}, Coordinate{0, 0}.Sub(Coordinate{-128, 127}).Sub(Coordinate{0, 1}))
	assert.Equal(t, Coordinate{2, 3}, Coordinate{5, 5}.Sub(Coordinate{3, 2}))
}

func TestOverflowingAddFlag(t *testing.T) {
	for a := math.MinInt8; a <= math.MaxInt8; a++ {
		for b := math.MinInt8; b <= math.MaxInt8; b++ {
			sum := a + b
			want := sum < math.MinInt8 || sum > math.MaxInt8

			got, overflowed := Coordinate{X: int8(a)}.OverflowingAdd(Coordinate{X: int8(b)})
			if overflowed != want {
				require.Failf(t, "overflow flag", "%d + %d reported %v", a, b, overflowed)
			}
			if !want && int(got.X) != sum {
				require.Failf(t, "sum", "%d + %d = %d", a, b, got.X)
			}
		}
	}
}

func TestOverflowingAddWrapsEitherAxis(t *testing.T) {
	c, overflowed := Coordinate{127, 0}.OverflowingAdd(Right)
	assert.True(t, overflowed)
	assert.Equal(t, Coordinate{-128, 0}, c)

	c, overflowed = Coordinate{0, -128}.OverflowingAdd(Down)
	assert.True(t, overflowed)
	assert.Equal(t, Coordinate{0, 127}, c)

	c, overflowed = Coordinate{3, 4}.OverflowingAdd(Up)
	assert.False(t, overflowed)
	assert.Equal(t, Coordinate{3, 5}, c)
}

func TestCoordinateString(t *testing.T) {
	assert.Equal(t, "(-3, 7)", Coordinate{-3, 7}.String())
}
