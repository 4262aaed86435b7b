package scoring

import "github.com/mcoot/guavagrams/internal/model"

// StalePenalty is applied once per repeat of a word within one batch
const StalePenalty = 0.8

// WordScore is the scoring detail for a single word of a batch
type WordScore struct {
	Word       string  `json:"word"`
	Base       int     `json:"base"`
	Multiplier float64 `json:"multiplier"`
	Penalty    float64 `json:"penalty"`
	Points     int     `json:"points"`
}

// Multiplier returns the length bonus for a word of n letters
func Multiplier(n int) float64 {
	switch {
	case n >= 10:
		return 2.5
	case n >= 7:
		return 2.0
	case n >= 4:
		return 1.5
	default:
		return 1.0
	}
}

// Breakdown scores each word in order. A word that already appeared
// earlier in the batch is multiplied by StalePenalty once per earlier
// occurrence.
func Breakdown(words []string, table model.ScoreTable) []WordScore {
	seen := make(map[string]int, len(words))
	scores := make([]WordScore, 0, len(words))
	for _, w := range words {
		base := 0
		length := 0
		for _, r := range w {
			base += table.Value(model.Letter(r))
			length++
		}

		penalty := 1.0
		for range seen[w] {
			penalty *= StalePenalty
		}
		seen[w]++

		mult := Multiplier(length)
		scores = append(scores, WordScore{
			Word:       w,
			Base:       base,
			Multiplier: mult,
			Penalty:    penalty,
			Points:     int(float64(base) * mult * penalty),
		})
	}
	return scores
}

// Score returns the total points for a batch of words
func Score(words []string, table model.ScoreTable) int {
	total := 0
	for _, ws := range Breakdown(words, table) {
		total += ws.Points
	}
	return total
}
