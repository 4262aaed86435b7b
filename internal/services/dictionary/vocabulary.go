package dictionary

import (
	"maps"
	"slices"

	"github.com/mcoot/guavagrams/internal/model"
)

// Vocabulary is the set of words a dictionary accepts
type Vocabulary map[string]struct{}

// NewVocabulary builds a vocabulary from a list of words
func NewVocabulary(words ...string) Vocabulary {
	v := make(Vocabulary, len(words))
	for _, w := range words {
		v[w] = struct{}{}
	}
	return v
}

// Contains reports whether word is in the vocabulary, compared exactly
func (v Vocabulary) Contains(word string) bool {
	_, ok := v[word]
	return ok
}

// Words returns the vocabulary in sorted order
func (v Vocabulary) Words() []string {
	return slices.Sorted(maps.Keys(v))
}

// ValidateWords checks every distinct word against the vocabulary.
// The first missing word, in order of first appearance, is reported as
// a *model.InvalidWordError.
func ValidateWords(words []string, vocabulary Vocabulary) error {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		if !vocabulary.Contains(w) {
			return &model.InvalidWordError{Word: w}
		}
	}
	return nil
}
