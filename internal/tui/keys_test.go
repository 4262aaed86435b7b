package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/guavagrams/internal/grid"
	"github.com/mcoot/guavagrams/internal/model"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		mods tcell.ModMask
		want Command
	}{
		{"escape quits", tcell.KeyEscape, 0, tcell.ModNone, Command{Action: ActionQuit}},
		{"Q quits", tcell.KeyRune, 'Q', tcell.ModNone, Command{Action: ActionQuit}},
		{"up", tcell.KeyUp, 0, tcell.ModNone, Command{Action: ActionMove, Delta: grid.Up}},
		{"down", tcell.KeyDown, 0, tcell.ModNone, Command{Action: ActionMove, Delta: grid.Down}},
		{"left", tcell.KeyLeft, 0, tcell.ModNone, Command{Action: ActionMove, Delta: grid.Left}},
		{"right", tcell.KeyRight, 0, tcell.ModNone, Command{Action: ActionMove, Delta: grid.Right}},
		{"lowercase places", tcell.KeyRune, 'e', tcell.ModNone, Command{Action: ActionPlace, Letter: 'e'}},
		{"non-alphabetic places", tcell.KeyRune, '7', tcell.ModNone, Command{Action: ActionPlace, Letter: '7'}},
		{"other uppercase ignored", tcell.KeyRune, 'B', tcell.ModNone, Command{}},
		{"G peels", tcell.KeyRune, 'G', tcell.ModNone, Command{Action: ActionPeel}},
		{"backspace picks up", tcell.KeyBackspace2, 0, tcell.ModNone, Command{Action: ActionPickUp}},
		{"delete picks up", tcell.KeyDelete, 0, tcell.ModNone, Command{Action: ActionPickUp}},
		{"ctrl key trades", tcell.KeyCtrlB, 0, tcell.ModCtrl, Command{Action: ActionTrade, Letter: 'b'}},
		{"ctrl c trades", tcell.KeyCtrlC, 0, tcell.ModCtrl, Command{Action: ActionTrade, Letter: 'c'}},
		{"ctrl h trades", tcell.KeyCtrlH, 0, tcell.ModCtrl, Command{Action: ActionTrade, Letter: 'h'}},
		{"ctrl digit ignored", tcell.KeyRune, '1', tcell.ModCtrl, Command{}},
		{"function keys ignored", tcell.KeyF1, 0, tcell.ModNone, Command{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tcell.NewEventKey(tt.key, tt.r, tt.mods)))
		})
	}
}

func TestDecodeInjectedCtrlKeys(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	screen.InjectKey(tcell.KeyCtrlX, 0, tcell.ModCtrl)
	screen.InjectKey(tcell.KeyRune, 'z', tcell.ModCtrl)
	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	for _, want := range []model.Letter{'x', 'z', 'c'} {
		ev, ok := screen.PollEvent().(*tcell.EventKey)
		require.True(t, ok)
		assert.Equal(t, Command{Action: ActionTrade, Letter: want}, Decode(ev))
	}
}
