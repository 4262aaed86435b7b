package referee

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/guavagrams/internal/grid"
	"github.com/mcoot/guavagrams/internal/model"
	"github.com/mcoot/guavagrams/internal/services/dictionary"
	"github.com/mcoot/guavagrams/internal/services/scoring"
	"github.com/mcoot/guavagrams/internal/storage/memory"
	"github.com/mcoot/guavagrams/internal/testutil"
)

func helloHi(t *testing.T) *grid.LetterBoard {
	b, err := grid.Parse("hello\ni....", grid.Coordinate{})
	require.NoError(t, err)
	return b
}

func TestCommitAcceptsValidBoard(t *testing.T) {
	r := New(dictionary.NewVocabulary("hello", "hi"), model.DefaultScoreTable())

	verdict, err := r.Commit(helloHi(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"hello", "hi"}, verdict.Words)
	// hello: 8 * 1.5, hi: 5
	assert.Equal(t, 17, verdict.Score)
	assert.Len(t, verdict.Breakdown, 2)
}

func TestCommitRejectsUnknownWord(t *testing.T) {
	r := New(dictionary.NewVocabulary("hello"), model.DefaultScoreTable())

	_, err := r.Commit(helloHi(t))

	var invalid *model.InvalidWordError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "hi", invalid.Word)
}

func TestCommitChecksConnectivityBeforeWords(t *testing.T) {
	b := helloHi(t)
	grid.Place(b, grid.Coordinate{X: 10, Y: 10}, 'q')
	r := New(dictionary.NewVocabulary("hello"), model.DefaultScoreTable())

	_, err := r.Commit(b)
	assert.ErrorIs(t, err, model.ErrWordsNotConnected)
}

func TestCommitEmptyBoard(t *testing.T) {
	r := New(dictionary.NewVocabulary(), model.DefaultScoreTable())

	verdict, err := r.Commit(grid.NewLetterBoard())
	require.NoError(t, err)
	assert.Empty(t, verdict.Words)
	assert.Zero(t, verdict.Score)
}

func TestCommitSharedHoldsLock(t *testing.T) {
	shared := grid.Share(helloHi(t))
	r := New(dictionary.NewVocabulary("hello", "hi"), model.DefaultScoreTable())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = r.CommitShared(shared)
		}()
		go func() {
			defer wg.Done()
			if shared.Place(grid.Coordinate{X: 1, Y: -1}, 'x') {
				shared.Remove(grid.Coordinate{X: 1, Y: -1})
			}
		}()
	}
	wg.Wait()

	verdict, err := r.CommitShared(shared)
	require.NoError(t, err)
	assert.Equal(t, 17, verdict.Score)
}

type ServiceSuite struct {
	suite.Suite
	dictService *dictionary.Service
	service     *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	storage := memory.New()
	s.dictService = dictionary.New(storage, testutil.NopLogger())
	s.service = NewService(s.dictService, scoring.New(storage, testutil.NopLogger()), testutil.NopLogger())
}

func (s *ServiceSuite) TestValidateWithLoadedDictionary() {
	s.Require().NoError(s.dictService.LoadWords("english", []string{"hello", "hi"}))

	verdict, err := s.service.Validate("english", helloHi(s.T()))
	s.Require().NoError(err)
	s.Equal(17, verdict.Score)
}

func (s *ServiceSuite) TestValidateWithUnknownDictionary() {
	_, err := s.service.Validate("klingon", helloHi(s.T()))
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}
