package tiles

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"unicode"

	"github.com/mcoot/guavagrams/internal/dependencies/random"
	"github.com/mcoot/guavagrams/internal/model"
)

// Distribution names accepted by ByName
const (
	NameBananagrams = "bananagrams"
	NameDictionary  = "dictionary"
)

// Weight is the relative frequency of one letter
type Weight struct {
	Letter model.Letter `json:"letter"`
	Count  int          `json:"count"`
}

// LetterDistribution is an ordered letter frequency table
type LetterDistribution []Weight

// Total returns the sum of all weights
func (d LetterDistribution) Total() int {
	total := 0
	for _, w := range d {
		total += w.Count
	}
	return total
}

// Contains reports whether the letter has a positive weight
func (d LetterDistribution) Contains(l model.Letter) bool {
	for _, w := range d {
		if w.Letter == l && w.Count > 0 {
			return true
		}
	}
	return false
}

// Distribution produces piles and single letters from a frequency table
type Distribution interface {
	Name() string
	Weights() LetterDistribution
	CreatePile(amount int) model.Pile
	PullEndless() model.Letter
	Contains(l model.Letter) bool
}

// Fixed is a Distribution over a literal frequency table
type Fixed struct {
	name    string
	weights LetterDistribution
	rnd     random.Random
}

var _ Distribution = (*Fixed)(nil)

// NewFixed creates a distribution from the given weights
func NewFixed(name string, weights LetterDistribution, rnd random.Random) *Fixed {
	return &Fixed{
		name:    name,
		weights: slices.Clone(weights),
		rnd:     rnd,
	}
}

// Bananagrams returns the classic 144 tile set
func Bananagrams(rnd random.Random) *Fixed {
	return NewFixed(NameBananagrams, bananagramsWeights, rnd)
}

// FromDictionary counts every non-whitespace character across words
func FromDictionary(words []string, rnd random.Random) *Fixed {
	counts := make(map[model.Letter]int)
	for _, w := range words {
		for _, r := range w {
			if unicode.IsSpace(r) {
				continue
			}
			counts[model.Letter(r)]++
		}
	}

	weights := make(LetterDistribution, 0, len(counts))
	for l, c := range counts {
		weights = append(weights, Weight{Letter: l, Count: c})
	}
	slices.SortFunc(weights, func(a, b Weight) int {
		return cmp.Compare(a.Letter, b.Letter)
	})
	return NewFixed(NameDictionary, weights, rnd)
}

// ByName resolves a distribution by name. The dictionary distribution
// is derived from the given words.
func ByName(name string, words []string, rnd random.Random) (Distribution, error) {
	switch name {
	case NameBananagrams, "":
		return Bananagrams(rnd), nil
	case NameDictionary:
		return FromDictionary(words, rnd), nil
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownDistribution, name)
	}
}

func (d *Fixed) Name() string {
	return d.name
}

func (d *Fixed) Weights() LetterDistribution {
	return slices.Clone(d.weights)
}

func (d *Fixed) Contains(l model.Letter) bool {
	return d.weights.Contains(l)
}

// CreatePile scales every weight to amount and rounds per letter, so
// the pile size only approximates amount.
func (d *Fixed) CreatePile(amount int) model.Pile {
	total := d.weights.Total()
	if total == 0 || amount <= 0 {
		return model.Pile{}
	}

	per := float64(total) / float64(amount)
	pile := make(model.Pile, 0, amount)
	for _, w := range d.weights {
		n := int(math.Round(float64(w.Count) / per))
		for range n {
			pile = append(pile, w.Letter)
		}
	}
	return pile
}

// PullEndless draws one letter weighted by frequency without depleting anything.
// An empty table yields model.NoLetter.
func (d *Fixed) PullEndless() model.Letter {
	total := d.weights.Total()
	if total == 0 {
		return model.NoLetter
	}

	target := d.rnd.Intn(total)
	for _, w := range d.weights {
		if w.Count <= 0 {
			continue
		}
		if target < w.Count {
			return w.Letter
		}
		target -= w.Count
	}
	return d.weights[len(d.weights)-1].Letter
}

var bananagramsWeights = LetterDistribution{
	{'a', 13}, {'b', 3}, {'c', 3}, {'d', 6}, {'e', 18}, {'f', 3}, {'g', 4},
	{'h', 3}, {'i', 12}, {'j', 2}, {'k', 2}, {'l', 5}, {'m', 3}, {'n', 8},
	{'o', 11}, {'p', 3}, {'q', 2}, {'r', 9}, {'s', 6}, {'t', 9}, {'u', 6},
	{'v', 3}, {'w', 3}, {'x', 2}, {'y', 3}, {'z', 2},
}
