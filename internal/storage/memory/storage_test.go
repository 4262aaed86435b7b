package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/guavagrams/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Dictionary tests

func (s *StorageSuite) TestSaveAndGetDictionaryWords() {
	words := []string{"apple", "banana", "cherry"}

	err := s.storage.SaveDictionaryWords(s.ctx, "fruit", words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx, "fruit")
	s.Require().NoError(err)
	s.Equal(words, retrieved)
}

func (s *StorageSuite) TestGetDictionaryWordsNotFound() {
	_, err := s.storage.GetDictionaryWords(s.ctx, "missing")
	s.ErrorIs(err, model.ErrDictionaryNotFound)
}

func (s *StorageSuite) TestSaveDictionaryWordsReplacesExisting() {
	_ = s.storage.SaveDictionaryWords(s.ctx, "fruit", []string{"apple", "banana"})
	_ = s.storage.SaveDictionaryWords(s.ctx, "fruit", []string{"cherry"})

	retrieved, err := s.storage.GetDictionaryWords(s.ctx, "fruit")
	s.Require().NoError(err)
	s.Equal([]string{"cherry"}, retrieved)
}

func (s *StorageSuite) TestSavedWordsAreCopied() {
	words := []string{"apple"}
	_ = s.storage.SaveDictionaryWords(s.ctx, "fruit", words)
	words[0] = "mutated"

	retrieved, _ := s.storage.GetDictionaryWords(s.ctx, "fruit")
	s.Equal([]string{"apple"}, retrieved)
}

func (s *StorageSuite) TestListDictionariesSorted() {
	_ = s.storage.SaveDictionaryWords(s.ctx, "words", []string{"a"})
	_ = s.storage.SaveDictionaryWords(s.ctx, "animals", []string{"b"})

	names, err := s.storage.ListDictionaries(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"animals", "words"}, names)
}

func (s *StorageSuite) TestDeleteDictionary() {
	_ = s.storage.SaveDictionaryWords(s.ctx, "words", []string{"a"})

	s.Require().NoError(s.storage.DeleteDictionary(s.ctx, "words"))

	_, err := s.storage.GetDictionaryWords(s.ctx, "words")
	s.ErrorIs(err, model.ErrDictionaryNotFound)
}

// Score table tests

func (s *StorageSuite) TestSaveAndGetScoreTable() {
	table := model.ScoreTable{'a': 1, 'q': 10}

	s.Require().NoError(s.storage.SaveScoreTable(s.ctx, "classic", table))

	retrieved, err := s.storage.GetScoreTable(s.ctx, "classic")
	s.Require().NoError(err)
	s.Equal(table, retrieved)
}

func (s *StorageSuite) TestGetScoreTableNotFound() {
	_, err := s.storage.GetScoreTable(s.ctx, "missing")
	s.ErrorIs(err, model.ErrScoreTableNotFound)
}
