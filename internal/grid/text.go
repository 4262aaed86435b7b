package grid

import (
	"fmt"
	"math"
	"strings"

	"github.com/mcoot/guavagrams/internal/model"
)

// Parse reads a text layout onto a fresh board. Lines run top to bottom and
// '.' or ' ' mark empty cells. The first cell of the first line lands on
// origin.
func Parse(text string, origin Coordinate) (*LetterBoard, error) {
	b := NewLetterBoard()

	lines := strings.Split(strings.TrimRight(text, "\r\n"), "\n")
	for row, line := range lines {
		col := 0
		for _, r := range strings.TrimRight(line, "\r") {
			if r != '.' && r != ' ' {
				c, err := offsetFrom(origin, col, row)
				if err != nil {
					return nil, fmt.Errorf("line %d column %d: %w", row+1, col+1, err)
				}
				if err := model.ValidateLetter(r); err != nil {
					return nil, fmt.Errorf("line %d column %d: %w", row+1, col+1, err)
				}
				Place(b, c, model.Letter(r))
			}
			col++
		}
	}
	return b, nil
}

func offsetFrom(origin Coordinate, col, row int) (Coordinate, error) {
	x := int(origin.X) + col
	y := int(origin.Y) - row
	if x > math.MaxInt8 || y < math.MinInt8 {
		return Coordinate{}, model.ErrOutOfBounds
	}
	return Coordinate{X: int8(x), Y: int8(y)}, nil
}

// Bounds returns the top-left and bottom-right corners of the placed letters
func Bounds(b *LetterBoard) (topLeft, bottomRight Coordinate, ok bool) {
	for _, t := range Tiles(b) {
		c := t.Coordinate
		if !ok {
			topLeft, bottomRight, ok = c, c, true
			continue
		}
		topLeft.X = min(topLeft.X, c.X)
		topLeft.Y = max(topLeft.Y, c.Y)
		bottomRight.X = max(bottomRight.X, c.X)
		bottomRight.Y = min(bottomRight.Y, c.Y)
	}
	return topLeft, bottomRight, ok
}

// Format renders the bounding box of the placed letters in Parse's layout
func Format(b *LetterBoard) string {
	topLeft, bottomRight, ok := Bounds(b)
	if !ok {
		return ""
	}

	var sb strings.Builder
	for y := int(topLeft.Y); y >= int(bottomRight.Y); y-- {
		for x := int(topLeft.X); x <= int(bottomRight.X); x++ {
			l := b.Get(Coordinate{X: int8(x), Y: int8(y)})
			if l.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteRune(rune(l))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
