// Package tui is the terminal front end: a side panel with the game state,
// a camera over the shared board and a status line.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mcoot/guavagrams/internal/grid"
	"github.com/mcoot/guavagrams/internal/model"
	"github.com/mcoot/guavagrams/internal/services/session"
)

const (
	panelWidth   = 24
	handPerLine  = 8
	refreshEvery = time.Second
	emptyCell    = '·'
)

var (
	titleStyle  = tcell.StyleDefault.Bold(true)
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	tileStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	cursorStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	errorStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	okStyle     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

var keyHelp = []string{
	"Arrows  move",
	"a-z     place",
	"Bksp    pick up",
	"Ctrl+x  trade x",
	"G       peel",
	"Q/Esc   quit",
}

// UI drives one session on a tcell screen
type UI struct {
	screen  tcell.Screen
	session *session.Session
	logger  *slog.Logger

	status      string
	statusStyle tcell.Style
}

// New creates a UI. The screen must already be initialised.
func New(screen tcell.Screen, s *session.Session, logger *slog.Logger) *UI {
	return &UI{
		screen:  screen,
		session: s,
		logger:  logger,
	}
}

// Status returns the message on the status line
func (u *UI) Status() string {
	return u.status
}

// Run draws and handles input until the player quits or ctx ends
func (u *UI) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(refreshEvery)
	defer ticker.Stop()

	u.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if u.Handle(ev) {
					return nil
				}
			case *tcell.EventResize:
				u.screen.Sync()
			}
		case <-ticker.C:
		}
		u.Draw()
	}
}

// Handle applies one key press. It returns true when the player quits.
func (u *UI) Handle(ev *tcell.EventKey) bool {
	cmd := Decode(ev)
	switch cmd.Action {
	case ActionQuit:
		u.logger.Debug("quit requested")
		return true
	case ActionMove:
		u.session.Move(cmd.Delta)
	case ActionPlace:
		if err := u.session.Place(cmd.Letter); err != nil {
			u.logger.Debug("place ignored", slog.String("letter", cmd.Letter.String()), slog.Any("error", err))
		}
	case ActionPickUp:
		if _, err := u.session.PickUp(); err != nil {
			u.logger.Debug("pick up ignored", slog.Any("error", err))
		}
	case ActionPeel:
		u.peel()
	case ActionTrade:
		u.trade(cmd.Letter)
	}
	return false
}

func (u *UI) peel() {
	result, err := u.session.Peel()
	switch {
	case err != nil:
		u.fail(err)
	case result.Finished:
		u.setStatus("Guavagrams!", okStyle)
	default:
		u.setStatus("Peel!", okStyle)
	}
}

func (u *UI) trade(letter model.Letter) {
	drawn, err := u.session.Trade(letter)
	if err != nil {
		if errors.Is(err, model.ErrLetterNotInHand) {
			return
		}
		u.fail(err)
		return
	}
	u.setStatus(fmt.Sprintf("Traded %s for %s", letter, model.Hand(drawn)), okStyle)
}

func (u *UI) fail(err error) {
	u.setStatus(model.Message(err), errorStyle)
}

func (u *UI) setStatus(msg string, style tcell.Style) {
	u.status = msg
	u.statusStyle = style
}

// Draw renders the whole frame
func (u *UI) Draw() {
	state := u.session.State()
	width, height := u.screen.Size()

	u.screen.Clear()
	u.drawPanel(state, height)
	u.drawBoard(state, width, height)
	drawText(u.screen, 0, height-1, width, u.statusStyle, u.status)
	u.screen.Show()
}

func (u *UI) drawPanel(state session.State, height int) {
	title := fmt.Sprintf(" Guavagrams (%s) ", session.FormatDuration(state.Elapsed))
	drawText(u.screen, 0, 0, panelWidth, titleStyle, title)

	lines := []struct {
		label, value string
	}{
		{"Position", state.Cursor.String()},
		{"Pile", fmt.Sprint(state.PileSize)},
		{"Score", fmt.Sprint(state.Score)},
		{"Tiles", state.Distribution},
	}

	y := 2
	for _, line := range lines {
		drawText(u.screen, 0, y, panelWidth, labelStyle, line.label+":")
		drawText(u.screen, len(line.label)+2, y, panelWidth, tcell.StyleDefault, line.value)
		y++
	}
	y++

	for _, help := range keyHelp {
		drawText(u.screen, 0, y, panelWidth, tcell.StyleDefault, help)
		y++
	}
	y++

	drawText(u.screen, 0, y, panelWidth, labelStyle, "Your Tiles:")
	y++
	for i := 0; i < len(state.Hand) && y < height-1; i += handPerLine {
		row := state.Hand[i:min(i+handPerLine, len(state.Hand))]
		drawText(u.screen, 0, y, panelWidth, tileStyle, model.Hand(row).String())
		y++
	}

	for y := 0; y < height-1; y++ {
		u.screen.SetContent(panelWidth, y, '│', nil, borderStyle)
	}
}

func (u *UI) drawBoard(state session.State, width, height int) {
	left := panelWidth + 1
	camera := NewCamera(width-left, height-1)
	cursorCol, cursorRow := camera.Centre()

	u.session.Board().View(func(b *grid.LetterBoard) {
		for row := 0; row < camera.Rows; row++ {
			for col := 0; col < camera.Cols; col++ {
				coord, ok := camera.At(state.Cursor, col, row)
				if !ok {
					continue
				}

				r, style := emptyCell, emptyStyle
				if l := b.Get(coord); !l.IsEmpty() {
					r, style = rune(l), tileStyle
				}
				if col == cursorCol && row == cursorRow {
					style = cursorStyle
					if r == emptyCell {
						r = ' '
					}
				}
				u.screen.SetContent(left+col*cellWidth, row, r, nil, style)
			}
		}
	})
}

func drawText(screen tcell.Screen, x, y, maxX int, style tcell.Style, text string) {
	for _, r := range text {
		if x >= maxX {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
