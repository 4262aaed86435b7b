package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/guavagrams/internal/model"
	"github.com/mcoot/guavagrams/internal/storage/memory"
	"github.com/mcoot/guavagrams/internal/testutil"
)

var cabTable = model.ScoreTable{'c': 3, 'a': 1, 'b': 3}

func TestMultiplierTiers(t *testing.T) {
	tests := []struct {
		length int
		want   float64
	}{
		{0, 1.0},
		{1, 1.0},
		{3, 1.0},
		{4, 1.5},
		{6, 1.5},
		{7, 2.0},
		{9, 2.0},
		{10, 2.5},
		{25, 2.5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Multiplier(tt.length), "length %d", tt.length)
	}
}

func TestScoreSingleWord(t *testing.T) {
	assert.Equal(t, 7, Score([]string{"cab"}, cabTable))
}

func TestScoreRepeatedWordIsPenalised(t *testing.T) {
	breakdown := Breakdown([]string{"cab", "cab"}, cabTable)

	assert.Equal(t, 7, breakdown[0].Points)
	assert.Equal(t, 5, breakdown[1].Points)
	assert.InDelta(t, 0.8, breakdown[1].Penalty, 1e-9)
	assert.Equal(t, 12, Score([]string{"cab", "cab"}, cabTable))
}

func TestScorePenaltyStacks(t *testing.T) {
	table := model.ScoreTable{'z': 10}
	// 10, 8, 6.4, 5.12
	assert.Equal(t, 10+8+6+5, Score([]string{"z", "z", "z", "z"}, table))
}

func TestScoreLengthMultiplierTruncates(t *testing.T) {
	table := model.ScoreTable{'a': 1}
	// 5 * 1.5 = 7.5
	assert.Equal(t, 7, Score([]string{"aaaaa"}, table))
	// 10 * 2.5
	assert.Equal(t, 25, Score([]string{"aaaaaaaaaa"}, table))
}

func TestScoreUnknownLettersAreWorthNothing(t *testing.T) {
	assert.Equal(t, 0, Score([]string{"?!"}, cabTable))
	assert.Equal(t, 4, Score([]string{"c?a"}, cabTable))
}

func TestScoreEmptyBatch(t *testing.T) {
	assert.Equal(t, 0, Score(nil, cabTable))
	assert.Empty(t, Breakdown(nil, cabTable))
}

func TestScoreIndependentAcrossCalls(t *testing.T) {
	assert.Equal(t, 7, Score([]string{"cab"}, cabTable))
	assert.Equal(t, 7, Score([]string{"cab"}, cabTable))
}

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestDefaultTable() {
	// h=4 e=1 l=1 l=1 o=1, five letters
	s.Equal(12, s.service.Score([]string{"hello"}))
	s.Equal(5, s.service.Score([]string{"hi"}))
}

func (s *ServiceSuite) TestUseTable() {
	s.service.UseTable(cabTable)
	s.Equal(7, s.service.Score([]string{"cab"}))
	s.Len(s.service.Breakdown([]string{"cab", "ab"}), 2)
}

func (s *ServiceSuite) TestSaveAndLoadTable() {
	s.service.UseTable(cabTable)
	s.Require().NoError(s.service.SaveTable(s.ctx, "cab"))

	other := New(s.storage, testutil.NopLogger())
	s.Require().NoError(other.LoadFromStorage(s.ctx, "cab"))
	s.Equal(cabTable, other.Table())
}

func (s *ServiceSuite) TestLoadMissingTableKeepsCurrent() {
	err := s.service.LoadFromStorage(s.ctx, "missing")
	s.ErrorIs(err, model.ErrScoreTableNotFound)
	s.Equal(model.DefaultScoreTable(), s.service.Table())
}
