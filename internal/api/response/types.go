package response

import (
	"github.com/mcoot/guavagrams/internal/grid"
	"github.com/mcoot/guavagrams/internal/model"
	"github.com/mcoot/guavagrams/internal/services/referee"
	"github.com/mcoot/guavagrams/internal/services/scoring"
	"github.com/mcoot/guavagrams/internal/services/tiles"
)

// Verdict is the response for an accepted board
type Verdict struct {
	Words     []string            `json:"words"`
	Score     int                 `json:"score"`
	Breakdown []scoring.WordScore `json:"breakdown"`
	Layout    string              `json:"layout"`
}

// VerdictFromModel converts a referee verdict, rendering the board it judged
func VerdictFromModel(v referee.Verdict, b *grid.LetterBoard) Verdict {
	words := v.Words
	if words == nil {
		words = []string{}
	}
	breakdown := v.Breakdown
	if breakdown == nil {
		breakdown = []scoring.WordScore{}
	}
	return Verdict{
		Words:     words,
		Score:     v.Score,
		Breakdown: breakdown,
		Layout:    grid.Format(b),
	}
}

// Pile is the response for a generated pile
type Pile struct {
	Distribution string   `json:"distribution"`
	Size         int      `json:"size"`
	Letters      []string `json:"letters"`
}

// PileFromModel converts a pile
func PileFromModel(distribution string, p model.Pile) Pile {
	return Pile{
		Distribution: distribution,
		Size:         len(p),
		Letters:      letterStrings(p),
	}
}

// Draw is the response for endless draws
type Draw struct {
	Distribution string   `json:"distribution"`
	Letters      []string `json:"letters"`
}

// DrawFromModel converts drawn letters
func DrawFromModel(distribution string, letters []model.Letter) Draw {
	return Draw{
		Distribution: distribution,
		Letters:      letterStrings(letters),
	}
}

// Weight is one letter's frequency
type Weight struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
}

// Distribution describes a letter distribution
type Distribution struct {
	Name    string   `json:"name"`
	Total   int      `json:"total"`
	Weights []Weight `json:"weights"`
}

// DistributionFromModel converts a tiles.Distribution
func DistributionFromModel(d tiles.Distribution) Distribution {
	weights := d.Weights()
	resp := Distribution{
		Name:    d.Name(),
		Total:   weights.Total(),
		Weights: make([]Weight, 0, len(weights)),
	}
	for _, w := range weights {
		resp.Weights = append(resp.Weights, Weight{Letter: w.Letter.String(), Count: w.Count})
	}
	return resp
}

// Dictionary summarises a loaded vocabulary
type Dictionary struct {
	Name      string `json:"name"`
	WordCount int    `json:"word_count"`
}

// DictionaryList is the response for listing dictionaries
type DictionaryList struct {
	Dictionaries []Dictionary `json:"dictionaries"`
}

// ScoreTable maps letters to points
type ScoreTable map[string]int

// ScoreTableFromModel converts a model.ScoreTable
func ScoreTableFromModel(t model.ScoreTable) ScoreTable {
	resp := make(ScoreTable, len(t))
	for l, v := range t {
		resp[l.String()] = v
	}
	return resp
}

func letterStrings[S ~[]model.Letter](letters S) []string {
	out := make([]string, len(letters))
	for i, l := range letters {
		out[i] = l.String()
	}
	return out
}
