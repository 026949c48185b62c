// Package engine drives a local two-player gobang game: it owns the game
// state and runs the evaluate, render, poll, apply loop.
package engine

import (
	"time"

	"gobang/game"
)

// Command is an abstract player action delivered by the input source.
type Command uint8

const (
	MoveUp Command = iota
	MoveDown
	MoveLeft
	MoveRight
	Place
	Restart
	Quit
)

func (c Command) String() string {
	switch c {
	case MoveUp:
		return "move-up"
	case MoveDown:
		return "move-down"
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case Place:
		return "place"
	case Restart:
		return "restart"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Source yields player commands.
type Source interface {
	// Next waits at most timeout for a command. ok is false when none
	// arrived in time.
	Next(timeout time.Duration) (cmd Command, ok bool, err error)
}

// Renderer draws the game once per loop iteration. It must not modify the
// state it is given.
type Renderer interface {
	Render(state *game.State) error
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	BoardSize    int           // Side length of the square board
	PollInterval time.Duration // Longest wait for input before redrawing
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		BoardSize:    game.DefaultSize,
		PollInterval: 50 * time.Millisecond,
	}
}
