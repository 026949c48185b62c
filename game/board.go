package game

import "fmt"

// DefaultSize is the side length used when nothing else is configured.
const DefaultSize = 10

// Board is a square grid of cells indexed as cells[row][col].
// Its size never changes after construction.
type Board struct {
	size  int
	cells [][]Cell
}

// NewBoard creates an empty board of the given side length.
func NewBoard(size int) *Board {
	if size < 1 {
		panic(fmt.Sprintf("game: invalid board size %d", size))
	}
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}
	return &Board{size: size, cells: cells}
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// At returns the cell at (row, col). It panics outside the board.
func (b *Board) At(row, col int) Cell {
	b.mustContain(row, col)
	return b.cells[row][col]
}

func (b *Board) set(row, col int, c Cell) {
	b.mustContain(row, col)
	b.cells[row][col] = c
}

func (b *Board) mustContain(row, col int) {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("game: position (%d, %d) outside %dx%d board", row, col, b.size, b.size))
	}
}
