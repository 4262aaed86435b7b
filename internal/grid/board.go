package grid

import "iter"

const (
	Width  = 256
	Height = 256
	Cells  = Width * Height
)

// Board is a fixed 256x256 store of cell payloads. Any Index or Coordinate
// addresses a cell, so lookups never go out of range.
type Board[T any] struct {
	cells [Cells]T
}

// New allocates a board with every cell set to fill
func New[T any](fill T) *Board[T] {
	b := new(Board[T])
	for i := range b.cells {
		b.cells[i] = fill
	}
	return b
}

func offset(i Index) int {
	return int(i.Row)*Width + int(i.Col)
}

// At returns the cell at a storage index
func (b *Board[T]) At(i Index) T {
	return b.cells[offset(i)]
}

// Set overwrites the cell at a storage index
func (b *Board[T]) Set(i Index, v T) {
	b.cells[offset(i)] = v
}

// Ptr returns the cell at a storage index for in-place mutation
func (b *Board[T]) Ptr(i Index) *T {
	return &b.cells[offset(i)]
}

// Get returns the cell at a coordinate
func (b *Board[T]) Get(c Coordinate) T {
	return b.At(c.Index())
}

// Put overwrites the cell at a coordinate
func (b *Board[T]) Put(c Coordinate, v T) {
	b.Set(c.Index(), v)
}

// All yields every cell in row-major storage order
func (b *Board[T]) All() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		for row := range Height {
			for col := range Width {
				i := Index{Col: uint8(col), Row: uint8(row)}
				if !yield(i, b.cells[offset(i)]) {
					return
				}
			}
		}
	}
}

// Clone returns an independent copy
func (b *Board[T]) Clone() *Board[T] {
	c := *b
	return &c
}
