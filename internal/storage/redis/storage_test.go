package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/guavagrams/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Dictionary tests

func (s *StorageSuite) TestSaveAndGetDictionaryWords() {
	words := []string{"cherry", "apple", "banana"}

	err := s.storage.SaveDictionaryWords(s.ctx, "fruit", words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx, "fruit")
	s.Require().NoError(err)
	s.Equal([]string{"apple", "banana", "cherry"}, retrieved)
}

func (s *StorageSuite) TestGetDictionaryWordsNotFound() {
	_, err := s.storage.GetDictionaryWords(s.ctx, "missing")
	s.ErrorIs(err, model.ErrDictionaryNotFound)
}

func (s *StorageSuite) TestSaveEmptyDictionaryIsStillListed() {
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, "empty", nil))

	words, err := s.storage.GetDictionaryWords(s.ctx, "empty")
	s.Require().NoError(err)
	s.Empty(words)

	names, err := s.storage.ListDictionaries(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"empty"}, names)
}

func (s *StorageSuite) TestSaveDictionaryWordsReplacesExisting() {
	_ = s.storage.SaveDictionaryWords(s.ctx, "fruit", []string{"apple", "banana"})
	_ = s.storage.SaveDictionaryWords(s.ctx, "fruit", []string{"cherry", "date", "elderberry"})

	retrieved, err := s.storage.GetDictionaryWords(s.ctx, "fruit")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"cherry", "date", "elderberry"}, retrieved)
}

func (s *StorageSuite) TestDictionaryNoTTLByDefault() {
	_ = s.storage.SaveDictionaryWords(s.ctx, "fruit", []string{"apple"})

	ttl := s.mini.TTL(dictionaryKey("fruit"))
	s.Equal(time.Duration(0), ttl, "Dictionary should not have TTL")
}

func (s *StorageSuite) TestDictionaryTTLApplied() {
	s.storage.cfg.DictionaryTTL = time.Hour
	_ = s.storage.SaveDictionaryWords(s.ctx, "fruit", []string{"apple"})

	s.Equal(time.Hour, s.mini.TTL(dictionaryKey("fruit")))
}

func (s *StorageSuite) TestListAndDeleteDictionaries() {
	_ = s.storage.SaveDictionaryWords(s.ctx, "words", []string{"a"})
	_ = s.storage.SaveDictionaryWords(s.ctx, "animals", []string{"b"})

	names, err := s.storage.ListDictionaries(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"animals", "words"}, names)

	s.Require().NoError(s.storage.DeleteDictionary(s.ctx, "words"))

	names, err = s.storage.ListDictionaries(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"animals"}, names)
	s.False(s.mini.Exists(dictionaryKey("words")))
}

// Score table tests

func (s *StorageSuite) TestSaveAndGetScoreTable() {
	table := model.ScoreTable{'a': 1, 'q': 10, 'z': 10}

	s.Require().NoError(s.storage.SaveScoreTable(s.ctx, "classic", table))

	retrieved, err := s.storage.GetScoreTable(s.ctx, "classic")
	s.Require().NoError(err)
	s.Equal(table, retrieved)
}

func (s *StorageSuite) TestSaveScoreTableReplacesExisting() {
	_ = s.storage.SaveScoreTable(s.ctx, "classic", model.ScoreTable{'a': 1, 'b': 3})
	_ = s.storage.SaveScoreTable(s.ctx, "classic", model.ScoreTable{'c': 3})

	retrieved, err := s.storage.GetScoreTable(s.ctx, "classic")
	s.Require().NoError(err)
	s.Equal(model.ScoreTable{'c': 3}, retrieved)
}

func (s *StorageSuite) TestGetScoreTableNotFound() {
	_, err := s.storage.GetScoreTable(s.ctx, "missing")
	s.ErrorIs(err, model.ErrScoreTableNotFound)
}

func (s *StorageSuite) TestGetScoreTableMalformedValue() {
	s.mini.HSet(scoreTableKey("broken"), "a", "lots")

	_, err := s.storage.GetScoreTable(s.ctx, "broken")
	s.Error(err)
}
