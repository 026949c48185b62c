package game

import "fmt"

// Direction is a single cursor step.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Pos is a board position, row first.
type Pos struct {
	Row int
	Col int
}

// Step moves one cell in d on a board of the given size, wrapping at the
// edges instead of clamping.
func (p Pos) Step(d Direction, size int) Pos {
	switch d {
	case Up:
		p.Row = wrap(p.Row-1, size)
	case Down:
		p.Row = wrap(p.Row+1, size)
	case Left:
		p.Col = wrap(p.Col-1, size)
	case Right:
		p.Col = wrap(p.Col+1, size)
	default:
		panic(fmt.Sprintf("game: unknown direction %d", d))
	}
	return p
}

func wrap(v, size int) int {
	switch {
	case v < 0:
		return size - 1
	case v >= size:
		return 0
	}
	return v
}
