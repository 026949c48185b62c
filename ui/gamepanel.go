package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"gobang/game"
)

// GameInfoPanel shows the board size, move count and last move next to the
// board.
type GameInfoPanel struct {
	box *tview.TextView
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetState refreshes the panel from the game.
func (p *GameInfoPanel) SetState(state *game.State) {
	p.box.SetText(infoText(state))
}

func infoText(state *game.State) string {
	if state == nil {
		return ""
	}
	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Board:[-:-:-] %dx%d\n", state.Size(), state.Size())
	text += fmt.Sprintf("[white]Move:[-:-:-]  %d\n", state.MoveNumber())

	if last, ok := state.LastMove(); ok {
		text += fmt.Sprintf("[white]Last:[-:-:-]  %s\n", PosLabel(last))
	}
	text += fmt.Sprintf("[white]Cursor:[-:-:-] %s\n", PosLabel(state.Cursor()))

	if run, ok := state.WinningRun(); ok {
		text += "\n[yellow::b]Winning line[-:-:-]\n"
		text += fmt.Sprintf("[dimgray]%s → %s[-]\n", PosLabel(run.Cells[0]), PosLabel(run.Cells[len(run.Cells)-1]))
	}
	return text
}

// hintText builds the status bar shown below the board.
func hintText(state *game.State) string {
	var statusLine, controlsLine string

	if winner, ok := state.Winner(); ok {
		statusLine = fmt.Sprintf("  ★ %s wins after %d moves", winner, state.MoveNumber())
		controlsLine = "\n  r · new game   q · quit"
	} else {
		turn, _ := state.Turn()
		statusLine = fmt.Sprintf("  ● %s to move", turn)
		controlsLine = "\n  hjkl/wasd/↑↓←→ move   ⏎ place   r restart   q quit"
	}
	return statusLine + controlsLine
}

// CreateGameLayout creates the main game layout: board and info panel side
// by side, status bar below, all inside a titled frame.
func CreateGameLayout(board *GoBoardUI, infoPanel *GameInfoPanel, hint *tview.TextView) *tview.Flex {
	boardWidth, _ := board.Size()

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, boardWidth+1, 0, true) // Board (fixed width)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)     // Info panel (fixed width)
	boardRow.AddItem(nil, 0, 1, false)                  // Right spacer

	// Main vertical flex: board area on top, compact status bar at bottom
	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 2, 0, false) // Compact: just 2 rows

	mainFlex.SetBorder(true).SetTitle(" ⬡ gobang ")
	return mainFlex
}
