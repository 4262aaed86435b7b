package factory

import (
	"time"

	"github.com/mcoot/guavagrams/internal/dependencies/mocks"
	"github.com/mcoot/guavagrams/internal/storage/memory"
	"github.com/mcoot/guavagrams/internal/testutil"
)

// TestDictionary is the name LoadTestDictionary loads under
const TestDictionary = "test"

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		// 2-letter words
		"at", "be", "do", "go", "he", "hi", "if", "in", "is", "it",
		"me", "my", "no", "of", "on", "or", "so", "to", "up", "we",
		// 3-letter words
		"ace", "act", "ant", "ape", "arc", "are", "art", "ate", "bat", "bee",
		"cab", "can", "cat", "cot", "dog", "ear", "eat", "hat", "hen", "ice",
		"oak", "oat", "one", "rat", "sea", "tea", "ten", "the", "toe", "zen",
		// longer words
		"able", "area", "bear", "cart", "date", "east", "heat", "idea", "neat",
		"hello", "house", "ocean", "stone", "tenor", "water", "guavas",
		"banana", "bananas", "guavagrams",
	}
	return t.DictionaryService.LoadWords(TestDictionary, words)
}
