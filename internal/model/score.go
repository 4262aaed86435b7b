package model

// ScoreTable maps each letter to its point value
type ScoreTable map[Letter]int

// Value returns the points for a letter, zero when unknown
func (t ScoreTable) Value(l Letter) int {
	return t[l]
}

// DefaultScoreTable returns the classic per-letter values
func DefaultScoreTable() ScoreTable {
	return ScoreTable{
		'a': 1, 'b': 3, 'c': 3, 'd': 2, 'e': 1, 'f': 4, 'g': 2,
		'h': 4, 'i': 1, 'j': 8, 'k': 5, 'l': 1, 'm': 3, 'n': 1,
		'o': 1, 'p': 3, 'q': 10, 'r': 1, 's': 1, 't': 1, 'u': 1,
		'v': 4, 'w': 4, 'x': 8, 'y': 4, 'z': 10,
	}
}
