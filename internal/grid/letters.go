package grid

import (
	"github.com/mcoot/guavagrams/internal/model"
)

// LetterBoard is the playing field. model.NoLetter marks an empty cell.
type LetterBoard = Board[model.Letter]

// Tile is a letter placed at a coordinate
type Tile struct {
	Coordinate Coordinate
	Letter     model.Letter
}

// NewLetterBoard creates an empty playing field
func NewLetterBoard() *LetterBoard {
	return New(model.NoLetter)
}

// FromTiles builds a playing field from a list of placements
func FromTiles(tiles []Tile) (*LetterBoard, error) {
	b := NewLetterBoard()
	for _, t := range tiles {
		if err := model.ValidateLetter(rune(t.Letter)); err != nil {
			return nil, err
		}
		if !Place(b, t.Coordinate, t.Letter) {
			return nil, model.ErrCellOccupied
		}
	}
	return b, nil
}

// Place puts a letter on an empty cell. It returns false if the cell is taken.
func Place(b *LetterBoard, c Coordinate, l model.Letter) bool {
	cell := b.Ptr(c.Index())
	if !cell.IsEmpty() {
		return false
	}
	*cell = l
	return true
}

// Remove lifts the letter off a cell
func Remove(b *LetterBoard, c Coordinate) (model.Letter, bool) {
	cell := b.Ptr(c.Index())
	l := *cell
	if l.IsEmpty() {
		return model.NoLetter, false
	}
	*cell = model.NoLetter
	return l, true
}

// Occupied returns true if a letter sits on the coordinate
func Occupied(b *LetterBoard, c Coordinate) bool {
	return !b.Get(c).IsEmpty()
}

// Tiles lists every placed letter in row-major order
func Tiles(b *LetterBoard) []Tile {
	var tiles []Tile
	for i, l := range b.All() {
		if !l.IsEmpty() {
			tiles = append(tiles, Tile{Coordinate: i.Coordinate(), Letter: l})
		}
	}
	return tiles
}

// Count returns the number of placed letters
func Count(b *LetterBoard) int {
	n := 0
	for _, l := range b.All() {
		if !l.IsEmpty() {
			n++
		}
	}
	return n
}
