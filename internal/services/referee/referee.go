package referee

import (
	"github.com/mcoot/guavagrams/internal/grid"
	"github.com/mcoot/guavagrams/internal/model"
	"github.com/mcoot/guavagrams/internal/services/dictionary"
	"github.com/mcoot/guavagrams/internal/services/scoring"
)

// Verdict is the outcome of a successful turn commit
type Verdict struct {
	Words     []string            `json:"words"`
	Score     int                 `json:"score"`
	Breakdown []scoring.WordScore `json:"breakdown"`
}

// Referee adjudicates boards against a fixed vocabulary and score table
type Referee struct {
	vocabulary dictionary.Vocabulary
	table      model.ScoreTable
}

// New creates a referee
func New(vocabulary dictionary.Vocabulary, table model.ScoreTable) *Referee {
	return &Referee{
		vocabulary: vocabulary,
		table:      table,
	}
}

// Commit scans the board, proves it connected, checks every word and
// scores the batch. The first failing step's error is returned.
func (r *Referee) Commit(b *grid.LetterBoard) (Verdict, error) {
	words := grid.Scan(b)

	if err := grid.ValidateConnectivity(b); err != nil {
		return Verdict{}, err
	}
	if err := dictionary.ValidateWords(words, r.vocabulary); err != nil {
		return Verdict{}, err
	}

	breakdown := scoring.Breakdown(words, r.table)
	score := 0
	for _, ws := range breakdown {
		score += ws.Points
	}

	return Verdict{
		Words:     words,
		Score:     score,
		Breakdown: breakdown,
	}, nil
}

// CommitShared runs Commit while holding the shared board's lock
func (r *Referee) CommitShared(shared *grid.Shared) (Verdict, error) {
	var verdict Verdict
	err := shared.Update(func(b *grid.LetterBoard) error {
		var err error
		verdict, err = r.Commit(b)
		return err
	})
	return verdict, err
}
