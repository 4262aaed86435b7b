package tui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/mcoot/guavagrams/internal/grid"
	"github.com/mcoot/guavagrams/internal/model"
)

// Action is what a key press asks the game to do
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionMove
	ActionPlace
	ActionPickUp
	ActionPeel
	ActionTrade
)

// Command is a decoded key press
type Command struct {
	Action Action
	Delta  grid.Coordinate
	Letter model.Letter
}

// Decode maps a key event to a game command
func Decode(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape:
		return Command{Action: ActionQuit}
	case tcell.KeyUp:
		return Command{Action: ActionMove, Delta: grid.Up}
	case tcell.KeyDown:
		return Command{Action: ActionMove, Delta: grid.Down}
	case tcell.KeyLeft:
		return Command{Action: ActionMove, Delta: grid.Left}
	case tcell.KeyRight:
		return Command{Action: ActionMove, Delta: grid.Right}
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return Command{Action: ActionPickUp}
	case tcell.KeyRune:
		return decodeRune(ev.Rune(), ev.Modifiers())
	}

	// Control characters arrive as their own key codes
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return Command{Action: ActionTrade, Letter: model.Letter('a' + rune(k-tcell.KeyCtrlA))}
	}
	return Command{}
}

func decodeRune(r rune, mods tcell.ModMask) Command {
	// Ctrl+letter has already become a control key; anything left is unbound
	if mods&tcell.ModCtrl != 0 {
		return Command{}
	}
	switch r {
	case 'Q':
		return Command{Action: ActionQuit}
	case 'G':
		return Command{Action: ActionPeel}
	}
	if unicode.IsUpper(r) || model.ValidateLetter(r) != nil {
		return Command{}
	}
	return Command{Action: ActionPlace, Letter: model.Letter(r)}
}
