package tiles

import (
	"slices"

	"github.com/mcoot/guavagrams/internal/dependencies/random"
	"github.com/mcoot/guavagrams/internal/model"
)

// PullFromPile removes and returns the first count letters of the pile.
// If fewer remain, ErrNoMoreTiles is returned and the pile is untouched.
func PullFromPile(pile *model.Pile, count int) ([]model.Letter, error) {
	if count < 0 || len(*pile) < count {
		return nil, model.ErrNoMoreTiles
	}
	drawn := slices.Clone((*pile)[:count])
	*pile = slices.Delete(*pile, 0, count)
	return drawn, nil
}

// Shuffle randomly reorders the pile in place
func Shuffle(pile model.Pile, rnd random.Random) {
	rnd.Shuffle(len(pile), func(i, j int) {
		pile[i], pile[j] = pile[j], pile[i]
	})
}
