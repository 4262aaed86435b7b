package grid

import (
	"sync"

	"github.com/mcoot/guavagrams/internal/model"
)

// Shared guards the playing field between the render path and the input
// path. Reads and writes both take the lock exclusively.
type Shared struct {
	mu    sync.Mutex
	board *LetterBoard
}

// NewShared wraps an empty playing field
func NewShared() *Shared {
	return &Shared{board: NewLetterBoard()}
}

// Share wraps an existing playing field. The caller must stop using b directly.
func Share(b *LetterBoard) *Shared {
	return &Shared{board: b}
}

// Place puts a letter on the coordinate, false if the cell is taken
func (s *Shared) Place(c Coordinate, l model.Letter) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Place(s.board, c, l)
}

// Remove lifts the letter off the coordinate
func (s *Shared) Remove(c Coordinate) (model.Letter, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Remove(s.board, c)
}

// Get returns the letter on the coordinate
func (s *Shared) Get(c Coordinate) model.Letter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Get(c)
}

// View runs fn with the lock held. fn must not keep the board.
func (s *Shared) View(fn func(b *LetterBoard)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.board)
}

// Update runs a multi-step operation with the lock held for its whole duration
func (s *Shared) Update(fn func(b *LetterBoard) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.board)
}

// Snapshot returns a copy of the board taken under the lock
func (s *Shared) Snapshot() *LetterBoard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}
