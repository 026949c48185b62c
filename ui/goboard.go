// Package ui draws a gobang game in the terminal with tcell and tview and
// turns key presses into engine commands.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gobang/config"
	"gobang/game"
)

type boardStyles struct {
	board      tcell.Color
	boardAlt   tcell.Color
	playerA    tcell.Color
	playerB    tcell.Color
	line       tcell.Color
	cursorBG   tcell.Color
	lastPlayed tcell.Color
	winningRun tcell.Color
}

// GoBoardUI draws the board grid, stones, cursor and rulers.
type GoBoardUI struct {
	Box    *tview.Box
	state  *game.State
	theme  config.Theme
	styles boardStyles
}

// NewGoBoard creates the board view. Call SetState before drawing.
func NewGoBoard(c *config.Config) *GoBoardUI {
	goBoard := &GoBoardUI{
		Box: tview.NewBox(),
	}
	goBoard.SetConfig(c)
	goBoard.Box.SetDrawFunc(goBoard.draw)
	return goBoard
}

// SetState points the view at the game to draw.
func (g *GoBoardUI) SetState(state *game.State) {
	g.state = state
}

func (g *GoBoardUI) SetConfig(c *config.Config) {
	colors := c.Theme.Colors
	g.styles = boardStyles{
		board:      tcell.PaletteColor(colors.BoardColor),
		boardAlt:   tcell.PaletteColor(colors.BoardColorAlt),
		playerA:    tcell.PaletteColor(colors.PlayerAColor),
		playerB:    tcell.PaletteColor(colors.PlayerBColor),
		line:       tcell.PaletteColor(colors.LineColor),
		cursorBG:   tcell.PaletteColor(colors.CursorColorBG),
		lastPlayed: tcell.PaletteColor(colors.LastPlayedBG),
		winningRun: tcell.PaletteColor(colors.WinningRunBG),
	}
	g.theme = c.Theme
}

// Size returns the width and height the board needs including rulers.
func (g *GoBoardUI) Size() (int, int) {
	if g.state == nil {
		return 1, 1
	}
	// 2 characters per cell, 4 columns of row numbers, 1 row of letters
	return g.state.Size()*2 + 4, g.state.Size() + 1
}

func (g *GoBoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if g.state == nil {
		return x, y, width, height
	}
	size := g.state.Size()
	cursor := g.state.Cursor()
	run, won := g.state.WinningRun()
	last, played := g.state.LastMove()

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			pos := game.Pos{Row: row, Col: col}
			cell := g.state.At(row, col)

			bg := g.styles.board
			if (row+col)%2 == 1 {
				bg = g.styles.boardAlt
			}
			switch {
			case pos == cursor && !g.theme.PlainCursor:
				bg = g.styles.cursorBG
			case won && run.Contains(pos):
				bg = g.styles.winningRun
			case played && pos == last && !g.theme.HideLastPlayed:
				bg = g.styles.lastPlayed
			}
			style := tcell.StyleDefault.Background(bg)
			if pos == cursor && g.theme.PlainCursor {
				style = style.Reverse(true)
			}

			switch cell {
			case game.StoneA:
				drawStoneCell(screen, style.Foreground(g.styles.playerA).Bold(true), config.Symbol(g.theme.Symbols.PlayerA), col, row, x+4, y)
			case game.StoneB:
				drawStoneCell(screen, style.Foreground(g.styles.playerB).Bold(true), config.Symbol(g.theme.Symbols.PlayerB), col, row, x+4, y)
			default:
				style = style.Foreground(g.styles.line)
				if g.theme.NoGridLines {
					drawStoneCell(screen, style, config.Symbol(g.theme.Symbols.BoardSquare), col, row, x+4, y)
					continue
				}
				// No connector runs into a stone on the right.
				hasStoneRight := col < size-1 && g.state.At(row, col+1) != game.Empty
				drawGridCell(screen, style, getGridRune(col, row, size, size), col, row, x+4, y, size, hasStoneRight)
			}
		}
	}
	g.drawCoordinates(screen, x, y)
	w, h := g.Size()
	return x, y, w, h
}

// drawStoneCell draws a stone cell (2 characters wide)
func drawStoneCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}

// drawGridCell draws an empty intersection and its connector to the right
func drawGridCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t, boardWidth int, hasStoneRight bool) {
	s.SetContent(l+x*2, t+y, r, nil, c)

	rightConn := '─'
	if x == boardWidth-1 || hasStoneRight {
		rightConn = ' '
	}
	s.SetContent(l+x*2+1, t+y, rightConn, nil, c)
}

// getGridRune returns the appropriate box-drawing character for a grid position
func getGridRune(x, y, width, height int) rune {
	isTop := y == 0
	isBottom := y == height-1
	isLeft := x == 0
	isRight := x == width-1

	switch {
	case isTop && isLeft:
		return '┌'
	case isTop && isRight:
		return '┐'
	case isBottom && isLeft:
		return '└'
	case isBottom && isRight:
		return '┘'
	case isTop:
		return '┬'
	case isBottom:
		return '┴'
	case isLeft:
		return '├'
	case isRight:
		return '┤'
	default:
		return '┼'
	}
}

func (g *GoBoardUI) drawCoordinates(s tcell.Screen, x, y int) {
	size := g.state.Size()
	cursor := g.state.Cursor()

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(g.styles.cursorBG)

	for col := 0; col < size; col++ {
		_style := style
		if col == cursor.Col {
			_style = highlight
		}
		s.SetContent(x+4+col*2, y+size, rune('A'+col), nil, _style)
		s.SetContent(x+4+col*2+1, y+size, ' ', nil, _style)
	}

	for row := 0; row < size; row++ {
		_style := style
		if row == cursor.Row {
			_style = highlight
		}
		label := fmt.Sprintf("%2d", row+1)
		s.SetContent(x+1, y+row, rune(label[0]), nil, _style)
		s.SetContent(x+2, y+row, rune(label[1]), nil, _style)
	}
}

// PosLabel formats a position the way the rulers show it, e.g. "C4".
func PosLabel(p game.Pos) string {
	return fmt.Sprintf("%c%d", 'A'+p.Col, p.Row+1)
}
