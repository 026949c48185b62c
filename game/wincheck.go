package game

// RunLength is the number of aligned stones that wins the game.
const RunLength = 5

// Run is a winning line of stones, listed from its first cell to its anchor.
type Run struct {
	Player Player
	Cells  [RunLength]Pos
}

// Contains reports whether p is one of the run's cells.
func (r Run) Contains(p Pos) bool {
	for _, c := range r.Cells {
		if c == p {
			return true
		}
	}
	return false
}

// axes are the step vectors of the four lines checked through a cell, in
// evaluation order. The anchor is always the last cell of the run, so the
// "/" axis starts four rows below the anchor and climbs to it.
var axes = [...]struct{ dRow, dCol int }{
	{1, 0},  // vertical
	{0, 1},  // horizontal
	{1, 1},  // "\"
	{-1, 1}, // "/"
}

// RunOfFiveThrough returns the label of a run of five ending at (row, col),
// or Empty if none of the four axes holds one.
func RunOfFiveThrough(b *Board, row, col int) Cell {
	if run, ok := runEndingAt(b, row, col); ok {
		return run.Player.Stone()
	}
	return Empty
}

// FindRun scans the board row by row and returns the first run of five it
// meets. When several runs exist the earliest anchor in scan order wins.
func FindRun(b *Board) (Run, bool) {
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if run, ok := runEndingAt(b, row, col); ok {
				return run, true
			}
		}
	}
	return Run{}, false
}

func runEndingAt(b *Board, row, col int) (Run, bool) {
	label := b.At(row, col)
	if label == Empty {
		return Run{}, false
	}
	for _, ax := range axes {
		startRow := row - (RunLength-1)*ax.dRow
		startCol := col - (RunLength-1)*ax.dCol
		if !b.InBounds(startRow, startCol) {
			continue
		}
		var run Run
		matched := true
		for k := 0; k < RunLength; k++ {
			p := Pos{Row: startRow + k*ax.dRow, Col: startCol + k*ax.dCol}
			if b.cells[p.Row][p.Col] != label {
				matched = false
				break
			}
			run.Cells[k] = p
		}
		if matched {
			run.Player, _ = label.Player()
			return run, true
		}
	}
	return Run{}, false
}
