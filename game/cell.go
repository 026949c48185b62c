// Package game holds the gobang board, cursor, turn order and win detection.
package game

// Cell is the content of one board intersection.
type Cell uint8

const (
	Empty Cell = iota
	StoneA
	StoneB
)

// Player returns the owner of the stone, or false for an empty cell.
func (c Cell) Player() (Player, bool) {
	switch c {
	case StoneA:
		return PlayerA, true
	case StoneB:
		return PlayerB, true
	}
	return noPlayer, false
}

func (c Cell) String() string {
	if p, ok := c.Player(); ok {
		return p.String()
	}
	return " "
}

// Player is one of the two people sharing the keyboard.
type Player uint8

const (
	noPlayer Player = iota
	PlayerA
	PlayerB
)

// Other returns the opponent.
func (p Player) Other() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	}
	panic("game: Other called on an invalid player")
}

// Stone returns the cell label this player writes onto the board.
func (p Player) Stone() Cell {
	switch p {
	case PlayerA:
		return StoneA
	case PlayerB:
		return StoneB
	}
	panic("game: Stone called on an invalid player")
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "X"
	case PlayerB:
		return "O"
	}
	return "?"
}
