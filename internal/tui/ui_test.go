package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/guavagrams/internal/dependencies/mocks"
	"github.com/mcoot/guavagrams/internal/grid"
	"github.com/mcoot/guavagrams/internal/model"
	"github.com/mcoot/guavagrams/internal/services/dictionary"
	"github.com/mcoot/guavagrams/internal/services/referee"
	"github.com/mcoot/guavagrams/internal/services/session"
	"github.com/mcoot/guavagrams/internal/services/tiles"
	"github.com/mcoot/guavagrams/internal/testutil"
)

type UISuite struct {
	suite.Suite
	screen tcell.SimulationScreen
	clock  *mocks.MockClock
	random *mocks.MockRandom
}

func TestUISuite(t *testing.T) {
	suite.Run(t, new(UISuite))
}

func (s *UISuite) SetupTest() {
	s.screen = tcell.NewSimulationScreen("UTF-8")
	s.Require().NoError(s.screen.Init())
	s.screen.SetSize(80, 24)
	s.clock = mocks.NewMockClock(time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC))
	s.random = mocks.NewMockRandom()
}

func (s *UISuite) TearDownTest() {
	s.screen.Fini()
}

// newUI deals a hand of handSize from a pile laid out exactly as given
func (s *UISuite) newUI(pile string, handSize int, words ...string) (*UI, *session.Session) {
	var weights tiles.LetterDistribution
	for _, r := range pile {
		weights = append(weights, tiles.Weight{Letter: model.Letter(r), Count: 1})
	}

	game, err := session.New(
		session.Config{PileSize: len(pile), HandSize: handSize},
		grid.NewShared(),
		tiles.NewFixed("test", weights, s.random),
		referee.New(dictionary.NewVocabulary(words...), model.DefaultScoreTable()),
		s.clock,
		s.random,
		testutil.NopLogger(),
	)
	s.Require().NoError(err)
	return New(s.screen, game, testutil.NopLogger()), game
}

func (s *UISuite) press(ui *UI, key tcell.Key, r rune, mods tcell.ModMask) bool {
	return ui.Handle(tcell.NewEventKey(key, r, mods))
}

func (s *UISuite) typeRunes(ui *UI, text string) {
	for _, r := range text {
		s.press(ui, tcell.KeyRune, r, tcell.ModNone)
		s.press(ui, tcell.KeyRight, 0, tcell.ModNone)
	}
}

func (s *UISuite) row(y int) string {
	width, _ := s.screen.Size()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := s.screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func (s *UISuite) TestPlaceAndPickUp() {
	ui, game := s.newUI("hi", 2)

	s.False(s.press(ui, tcell.KeyRune, 'h', tcell.ModNone))
	s.Equal(model.Letter('h'), game.Board().Get(grid.Coordinate{}))
	s.Equal(model.Hand{'i'}, game.State().Hand)

	s.press(ui, tcell.KeyBackspace2, 0, tcell.ModNone)
	s.Equal(model.NoLetter, game.Board().Get(grid.Coordinate{}))
	s.Equal(model.Hand{'h', 'i'}, game.State().Hand)
}

func (s *UISuite) TestPlacingALetterNotInHandIsIgnored() {
	ui, game := s.newUI("hi", 2)

	s.press(ui, tcell.KeyRune, 'z', tcell.ModNone)
	s.Equal(0, grid.Count(game.Board().Snapshot()))
	s.Empty(ui.Status())
}

func (s *UISuite) TestArrowsMoveCursor() {
	ui, game := s.newUI("hi", 2)

	s.press(ui, tcell.KeyUp, 0, tcell.ModNone)
	s.press(ui, tcell.KeyUp, 0, tcell.ModNone)
	s.press(ui, tcell.KeyLeft, 0, tcell.ModNone)
	s.Equal(grid.Coordinate{X: -1, Y: 2}, game.State().Cursor)
}

func (s *UISuite) TestPeelWithTilesInHand() {
	ui, _ := s.newUI("hi", 2, "hi")

	s.press(ui, tcell.KeyRune, 'G', tcell.ModNone)
	s.Equal("You still have tiles in your hand!", ui.Status())
}

func (s *UISuite) TestPeelDrawsFromPile() {
	ui, game := s.newUI("hit", 2, "hi")
	s.typeRunes(ui, "hi")

	s.press(ui, tcell.KeyRune, 'G', tcell.ModNone)
	s.Equal("Peel!", ui.Status())
	s.Equal(model.Hand{'t'}, game.State().Hand)
	s.Equal(5, game.State().Score)
}

func (s *UISuite) TestFinalPeelWinsTheGame() {
	ui, game := s.newUI("hi", 2, "hi")
	s.typeRunes(ui, "hi")

	s.press(ui, tcell.KeyRune, 'G', tcell.ModNone)
	s.Equal("Guavagrams!", ui.Status())
	s.True(game.State().Finished())
}

func (s *UISuite) TestRejectedPeelShowsReason() {
	ui, game := s.newUI("ih", 2, "hi")
	s.typeRunes(ui, "ih")

	s.press(ui, tcell.KeyRune, 'G', tcell.ModNone)
	s.Equal(`Invalid word "ih"!`, ui.Status())
	s.Equal(-session.Penalty, game.State().Score)
}

func (s *UISuite) TestTrade() {
	ui, game := s.newUI("hiabc", 2)

	s.press(ui, tcell.KeyCtrlI, 0, tcell.ModCtrl)
	s.Equal("Traded i for a b c", ui.Status())
	s.Equal(model.Hand{'a', 'b', 'c', 'h'}, game.State().Hand)
	s.Equal(1, game.State().PileSize)
}

func (s *UISuite) TestTradeWithShortPile() {
	ui, _ := s.newUI("hia", 2)

	s.press(ui, tcell.KeyCtrlH, 0, tcell.ModCtrl)
	s.Equal("The pile's all out of tiles, or there isn't enough to pull!", ui.Status())
}

func (s *UISuite) TestQuitKeys() {
	ui, _ := s.newUI("hi", 2)

	s.True(s.press(ui, tcell.KeyRune, 'Q', tcell.ModNone))
	s.True(s.press(ui, tcell.KeyEscape, 0, tcell.ModNone))
	s.False(s.press(ui, tcell.KeyCtrlC, 0, tcell.ModCtrl))
}

func (s *UISuite) TestDrawShowsStateAndBoard() {
	ui, _ := s.newUI("hit", 2)
	s.press(ui, tcell.KeyRune, 'h', tcell.ModNone)
	s.clock.Advance(time.Hour + time.Minute + time.Second)

	ui.Draw()

	s.Contains(s.row(0), " Guavagrams (01:01:01) ")
	s.Contains(s.row(2), "Position: (0, 0)")
	s.Contains(s.row(3), "Pile: 1")
	s.Contains(s.row(4), "Score: 0")
	s.Contains(s.row(5), "Tiles: test")
	s.Contains(s.row(15), "i")

	// Camera is 27x23 cells to the right of the panel, centred on the cursor
	r, _, _, _ := s.screen.GetContent(panelWidth+1+13*cellWidth, 11)
	s.Equal('h', r)
}

func (s *UISuite) TestDrawFollowsCursor() {
	ui, _ := s.newUI("hit", 2)
	s.press(ui, tcell.KeyRune, 'h', tcell.ModNone)
	s.press(ui, tcell.KeyRight, 0, tcell.ModNone)

	ui.Draw()

	r, _, _, _ := s.screen.GetContent(panelWidth+1+12*cellWidth, 11)
	s.Equal('h', r)
	r, _, _, _ = s.screen.GetContent(panelWidth+1+13*cellWidth, 11)
	s.Equal(' ', r)
}

func (s *UISuite) TestDrawShowsStatusLine() {
	ui, _ := s.newUI("hi", 2)
	s.press(ui, tcell.KeyRune, 'G', tcell.ModNone)

	ui.Draw()

	s.Contains(s.row(23), "You still have tiles in your hand!")
}

func (s *UISuite) TestRunStopsOnQuit() {
	ui, _ := s.newUI("hi", 2)
	s.screen.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	s.screen.InjectKey(tcell.KeyRune, 'Q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- ui.Run(context.Background()) }()

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(5 * time.Second):
		s.Fail("Run did not stop after Q")
	}
}

func (s *UISuite) TestRunStopsWhenContextEnds() {
	ui, _ := s.newUI("hi", 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(ui.Run(ctx))
}
