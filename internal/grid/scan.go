package grid

// Direction classifies the axes on which a cell has occupied neighbours
type Direction int

const (
	DirectionNone Direction = iota
	DirectionHorizontal
	DirectionVertical
	DirectionBoth
)

func (d Direction) String() string {
	switch d {
	case DirectionHorizontal:
		return "horizontal"
	case DirectionVertical:
		return "vertical"
	case DirectionBoth:
		return "both"
	default:
		return "none"
	}
}

// Adjacency reports on which axes the coordinate touches another letter.
// Neighbours past the edge of the coordinate space do not exist.
func Adjacency(b *LetterBoard, c Coordinate) Direction {
	horizontal := hasNeighbour(b, c, Right) || hasNeighbour(b, c, Left)
	vertical := hasNeighbour(b, c, Up) || hasNeighbour(b, c, Down)

	switch {
	case horizontal && vertical:
		return DirectionBoth
	case horizontal:
		return DirectionHorizontal
	case vertical:
		return DirectionVertical
	}
	return DirectionNone
}

func hasNeighbour(b *LetterBoard, c Coordinate, delta Coordinate) bool {
	n, overflowed := c.OverflowingAdd(delta)
	return !overflowed && !b.Get(n).IsEmpty()
}

// Scan extracts the words on the board: every horizontal run in row-major
// order, then every vertical run in column-major order. A letter that only
// touches the other axis is left out of the current axis's run, and
// single-letter vertical runs are dropped, so an intersection is never read
// as a word of the axis it does not belong to. Repeated words are kept.
func Scan(b *LetterBoard) []string {
	s := scanner{board: b}

	for row := range Height {
		for col := range Width {
			s.visit(Index{Col: uint8(col), Row: uint8(row)}, DirectionVertical, 1)
		}
		s.flush(1)
	}

	for col := range Width {
		for row := range Height {
			s.visit(Index{Col: uint8(col), Row: uint8(row)}, DirectionHorizontal, 2)
		}
		s.flush(2)
	}

	return s.words
}

type scanner struct {
	board *LetterBoard
	run   []rune
	words []string
}

// visit extends the current run with the cell unless its only neighbours lie
// along the excluded axis. An empty cell ends the run.
func (s *scanner) visit(i Index, exclude Direction, minLen int) {
	l := s.board.At(i)
	if l.IsEmpty() {
		s.flush(minLen)
		return
	}
	if Adjacency(s.board, i.Coordinate()) != exclude {
		s.run = append(s.run, rune(l))
	}
}

func (s *scanner) flush(minLen int) {
	if len(s.run) >= minLen {
		s.words = append(s.words, string(s.run))
	}
	s.run = s.run[:0]
}
