package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"gobang/engine"
)

// CommandForKey maps a key press onto a game command. Arrow keys, WASD and
// hjkl move the cursor; Enter or Space places a stone.
func CommandForKey(event *tcell.EventKey) (engine.Command, bool) {
	switch event.Key() {
	case tcell.KeyUp:
		return engine.MoveUp, true
	case tcell.KeyDown:
		return engine.MoveDown, true
	case tcell.KeyLeft:
		return engine.MoveLeft, true
	case tcell.KeyRight:
		return engine.MoveRight, true
	case tcell.KeyEnter:
		return engine.Place, true
	case tcell.KeyEsc, tcell.KeyCtrlC:
		return engine.Quit, true
	case tcell.KeyRune:
		return commandForRune(event.Rune())
	}
	return 0, false
}

func commandForRune(r rune) (engine.Command, bool) {
	switch unicode.ToLower(r) {
	case 'w', 'k':
		return engine.MoveUp, true
	case 's', 'j':
		return engine.MoveDown, true
	case 'a', 'h':
		return engine.MoveLeft, true
	case 'd', 'l':
		return engine.MoveRight, true
	case ' ':
		return engine.Place, true
	case 'r':
		return engine.Restart, true
	case 'q':
		return engine.Quit, true
	}
	return 0, false
}
