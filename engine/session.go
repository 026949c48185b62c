package engine

import (
	"context"
	"fmt"
	"log/slog"

	"gobang/game"
)

// Session owns the single live game and replaces it wholesale on restart.
type Session struct {
	cfg   GameConfig
	state *game.State
	log   *slog.Logger
	games int
}

// NewSession starts the first game.
func NewSession(cfg GameConfig, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	s := &Session{cfg: cfg, log: log}
	s.newGame()
	return s
}

// State returns the current game. The pointer changes on restart.
func (s *Session) State() *game.State {
	return s.state
}

// Games returns how many games have been started in this session.
func (s *Session) Games() int {
	return s.games
}

func (s *Session) newGame() {
	s.state = game.New(s.cfg.BoardSize)
	s.games++
	s.log.Info("game started", "game", s.games, "board_size", s.cfg.BoardSize)
}

// Apply executes one command against the current game and re-evaluates the
// outcome. It returns true when the loop should stop.
func (s *Session) Apply(cmd Command) bool {
	switch cmd {
	case MoveUp:
		s.state.MoveCursor(game.Up)
	case MoveDown:
		s.state.MoveCursor(game.Down)
	case MoveLeft:
		s.state.MoveCursor(game.Left)
	case MoveRight:
		s.state.MoveCursor(game.Right)
	case Place:
		s.place()
	case Restart:
		s.log.Info("game restarted", "game", s.games, "moves", s.state.MoveNumber())
		s.newGame()
	case Quit:
		s.log.Info("quit", "games", s.games)
		return true
	default:
		s.log.Warn("unknown command ignored", "command", int(cmd))
	}
	s.evaluate()
	return false
}

func (s *Session) place() {
	pos := s.state.Cursor()
	player, live := s.state.Turn()
	if !s.state.Place() {
		s.log.Debug("placement ignored", "row", pos.Row, "col", pos.Col, "game_over", !live)
		return
	}
	s.log.Debug("stone placed", "player", player.String(), "row", pos.Row, "col", pos.Col, "move", s.state.MoveNumber())
}

func (s *Session) evaluate() {
	ended := s.state.Ended()
	s.state.Evaluate()
	if ended || !s.state.Ended() {
		return
	}
	winner, _ := s.state.Winner()
	s.log.Info("game won", "game", s.games, "winner", winner.String(), "moves", s.state.MoveNumber())
}

// Run loops until Quit, an input or render error, or ctx is cancelled. Each
// iteration evaluates the outcome before drawing and before the next command
// is accepted.
func (s *Session) Run(ctx context.Context, src Source, r Renderer) error {
	for {
		if err := ctx.Err(); err != nil {
			s.log.Info("session cancelled", "reason", err)
			return nil
		}
		s.evaluate()
		if err := r.Render(s.state); err != nil {
			return fmt.Errorf("failed to render: %w", err)
		}
		cmd, ok, err := src.Next(s.cfg.PollInterval)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if !ok {
			continue
		}
		if s.Apply(cmd) {
			return nil
		}
	}
}
