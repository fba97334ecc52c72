package ui

import "github.com/gdamore/tcell/v2"

// Action is a user input decoded from a key event.
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionPause
	ActionStart
	ActionQuit
)

// KeyToAction converts a key event into a game action.
// Up/Down and w/s move the paddle, p pauses, Enter starts.
func KeyToAction(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyUp:
		return ActionMoveUp
	case tcell.KeyDown:
		return ActionMoveDown
	case tcell.KeyEnter:
		return ActionStart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return ActionMoveUp
		case 's', 'S':
			return ActionMoveDown
		case 'p', 'P':
			return ActionPause
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}
