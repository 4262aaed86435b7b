package model

import (
	"slices"
	"strings"
	"unicode"
)

// Letter is a single tile. The zero value marks an empty cell.
type Letter rune

// NoLetter is the empty cell
const NoLetter Letter = 0

// IsEmpty returns true for the empty cell
func (l Letter) IsEmpty() bool {
	return l == NoLetter
}

func (l Letter) String() string {
	if l.IsEmpty() {
		return ""
	}
	return string(rune(l))
}

// ValidateLetter checks that a rune can be used as a tile
func ValidateLetter(r rune) error {
	if r == 0 || unicode.IsSpace(r) || !unicode.IsPrint(r) {
		return ErrInvalidLetter
	}
	return nil
}

// Hand is the set of tiles a player currently holds
type Hand []Letter

// Contains returns true if the hand holds at least one copy of the letter
func (h Hand) Contains(l Letter) bool {
	return slices.Contains(h, l)
}

// Remove takes the first copy of the letter out of the hand
func (h *Hand) Remove(l Letter) bool {
	i := slices.Index(*h, l)
	if i < 0 {
		return false
	}
	*h = slices.Delete(*h, i, i+1)
	return true
}

// Sort orders the hand alphabetically
func (h Hand) Sort() {
	slices.Sort(h)
}

func (h Hand) String() string {
	return joinLetters(h)
}

// Pile is the ordered, finite stock of undrawn tiles
type Pile []Letter

func (p Pile) String() string {
	return joinLetters(p)
}

// Counts tallies how many of each letter the pile holds
func (p Pile) Counts() map[Letter]int {
	counts := make(map[Letter]int)
	for _, l := range p {
		counts[l]++
	}
	return counts
}

func joinLetters(letters []Letter) string {
	var sb strings.Builder
	for i, l := range letters {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(rune(l))
	}
	return sb.String()
}
