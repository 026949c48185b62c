package game

// State is one game in progress or finished. Restarting means building a new
// State; nothing here is ever reset field by field.
type State struct {
	board      *Board
	cursor     Pos
	turn       Player // noPlayer once the game has ended
	winner     Player // noPlayer while in progress
	run        Run
	moveNumber int
	lastMove   Pos
}

// New creates a fresh game: empty board, cursor at the top-left corner and
// PlayerA to move.
func New(size int) *State {
	return &State{
		board:    NewBoard(size),
		turn:     PlayerA,
		lastMove: Pos{Row: -1, Col: -1},
	}
}

// Size returns the board side length.
func (s *State) Size() int {
	return s.board.Size()
}

// Board exposes the grid for read-only use by evaluators and renderers.
func (s *State) Board() *Board {
	return s.board
}

// At returns the cell at (row, col).
func (s *State) At(row, col int) Cell {
	return s.board.At(row, col)
}

// Cursor returns the highlighted position.
func (s *State) Cursor() Pos {
	return s.cursor
}

// Turn returns the player to move, or false once the game has ended.
func (s *State) Turn() (Player, bool) {
	return s.turn, s.turn != noPlayer
}

// Winner returns the winning player, or false while the game is in progress.
func (s *State) Winner() (Player, bool) {
	return s.winner, s.winner != noPlayer
}

// Ended reports whether a winner has been determined.
func (s *State) Ended() bool {
	return s.winner != noPlayer
}

// WinningRun returns the five cells that decided the game.
func (s *State) WinningRun() (Run, bool) {
	return s.run, s.Ended()
}

// MoveNumber returns how many stones have been placed.
func (s *State) MoveNumber() int {
	return s.moveNumber
}

// LastMove returns the most recent placement, or false before the first one.
func (s *State) LastMove() (Pos, bool) {
	return s.lastMove, s.moveNumber > 0
}

// MoveCursor steps the cursor one cell, wrapping around the board edges.
func (s *State) MoveCursor(d Direction) {
	s.cursor = s.cursor.Step(d, s.board.Size())
}

// Place puts the current player's stone under the cursor and passes the turn.
// It does nothing and returns false when the cell is taken or nobody is to
// move because the game is over.
func (s *State) Place() bool {
	if s.turn == noPlayer {
		return false
	}
	if s.board.At(s.cursor.Row, s.cursor.Col) != Empty {
		return false
	}
	s.board.set(s.cursor.Row, s.cursor.Col, s.turn.Stone())
	s.turn = s.turn.Other()
	s.moveNumber++
	s.lastMove = s.cursor
	return true
}

// Evaluate looks for a run of five and, on the first one found, records its
// player as the winner and clears the turn. Calling it repeatedly is safe; a
// recorded winner is kept.
func (s *State) Evaluate() {
	if s.Ended() {
		return
	}
	run, ok := FindRun(s.board)
	if !ok {
		return
	}
	s.winner = run.Player
	s.run = run
	s.turn = noPlayer
}
