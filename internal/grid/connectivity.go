package grid

import (
	"github.com/mcoot/guavagrams/internal/model"
)

// ValidateConnectivity proves every placed letter belongs to one region under
// 4-connectivity. An empty board is trivially connected.
func ValidateConnectivity(b *LetterBoard) error {
	seed, ok := firstOccupied(b)
	if !ok {
		return nil
	}

	visited := New(false)
	visited.Put(seed, true)

	// Explicit stack: a full board would be 65,536 frames deep otherwise
	stack := []Coordinate{seed}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range cardinals {
			n, overflowed := c.OverflowingAdd(d)
			if overflowed || visited.Get(n) || b.Get(n).IsEmpty() {
				continue
			}
			visited.Put(n, true)
			stack = append(stack, n)
		}
	}

	for i, l := range b.All() {
		if !l.IsEmpty() && !visited.At(i) {
			return model.ErrWordsNotConnected
		}
	}
	return nil
}

// firstOccupied returns the first placed letter in row-major order
func firstOccupied(b *LetterBoard) (Coordinate, bool) {
	for i, l := range b.All() {
		if !l.IsEmpty() {
			return i.Coordinate(), true
		}
	}
	return Coordinate{}, false
}
