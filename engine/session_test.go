package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gobang/game"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// scriptedSource replays a fixed list of commands, reporting a timeout
// between each so the loop redraws without input.
type scriptedSource struct {
	cmds  []Command
	polls int
	err   error
}

func (s *scriptedSource) Next(timeout time.Duration) (Command, bool, error) {
	s.polls++
	if s.polls%2 == 1 {
		return 0, false, nil
	}
	if len(s.cmds) == 0 {
		if s.err != nil {
			return 0, false, s.err
		}
		return Quit, true, nil
	}
	cmd := s.cmds[0]
	s.cmds = s.cmds[1:]
	return cmd, true, nil
}

// recordingRenderer remembers what it saw on every frame.
type recordingRenderer struct {
	frames  int
	winners []bool
	err     error
}

func (r *recordingRenderer) Render(state *game.State) error {
	r.frames++
	r.winners = append(r.winners, state.Ended())
	return r.err
}

func TestApplyMovesCursor(t *testing.T) {
	s := NewSession(DefaultConfig(), testLogger())

	require.False(t, s.Apply(MoveDown))
	require.False(t, s.Apply(MoveRight))
	require.False(t, s.Apply(MoveRight))
	assert.Equal(t, game.Pos{Row: 1, Col: 2}, s.State().Cursor())

	require.False(t, s.Apply(MoveUp))
	require.False(t, s.Apply(MoveUp))
	require.False(t, s.Apply(MoveLeft))
	assert.Equal(t, game.Pos{Row: game.DefaultSize - 1, Col: 1}, s.State().Cursor())
}

func TestApplyPlaceAlternatesPlayers(t *testing.T) {
	s := NewSession(DefaultConfig(), testLogger())

	s.Apply(Place)
	s.Apply(MoveRight)
	s.Apply(Place)
	s.Apply(Place) // occupied, ignored

	assert.Equal(t, game.StoneA, s.State().At(0, 0))
	assert.Equal(t, game.StoneB, s.State().At(0, 1))
	turn, ok := s.State().Turn()
	require.True(t, ok)
	assert.Equal(t, game.PlayerA, turn)
	assert.Equal(t, 2, s.State().MoveNumber())
}

func TestApplyDetectsWin(t *testing.T) {
	s := NewSession(DefaultConfig(), testLogger())

	// A plays row 0, B plays row 1.
	for i := 0; i < 4; i++ {
		s.Apply(Place)
		s.Apply(MoveDown)
		s.Apply(Place)
		s.Apply(MoveUp)
		s.Apply(MoveRight)
	}
	require.False(t, s.State().Ended())

	s.Apply(Place)

	winner, ok := s.State().Winner()
	require.True(t, ok)
	assert.Equal(t, game.PlayerA, winner)

	// Further placements are inert.
	s.Apply(MoveDown)
	s.Apply(MoveDown)
	s.Apply(Place)
	assert.Equal(t, game.Empty, s.State().At(2, 4))
}

func TestApplyRestartReplacesState(t *testing.T) {
	s := NewSession(DefaultConfig(), testLogger())
	s.Apply(MoveRight)
	s.Apply(Place)
	before := s.State()

	require.False(t, s.Apply(Restart))

	assert.NotSame(t, before, s.State())
	assert.Equal(t, 2, s.Games())
	assert.Equal(t, game.Pos{}, s.State().Cursor())
	assert.Equal(t, game.Empty, s.State().At(0, 1))
	assert.Equal(t, 0, s.State().MoveNumber())
}

func TestApplyQuitStops(t *testing.T) {
	s := NewSession(DefaultConfig(), testLogger())
	assert.True(t, s.Apply(Quit))
}

func TestRunEvaluatesBeforeRender(t *testing.T) {
	cfg := GameConfig{BoardSize: 5, PollInterval: time.Millisecond}
	s := NewSession(cfg, testLogger())

	// Column 0 for A, column 1 for B; A's fifth stone lands on (4, 0).
	var cmds []Command
	for i := 0; i < 4; i++ {
		cmds = append(cmds, Place, MoveRight, Place, MoveLeft, MoveDown)
	}
	cmds = append(cmds, Place)
	src := &scriptedSource{cmds: cmds}
	r := &recordingRenderer{}

	require.NoError(t, s.Run(context.Background(), src, r))

	require.NotEmpty(t, r.winners)
	assert.False(t, r.winners[0])
	assert.True(t, r.winners[len(r.winners)-1], "the frame after the winning move shows the winner")
	winner, ok := s.State().Winner()
	require.True(t, ok)
	assert.Equal(t, game.PlayerA, winner)
}

func TestRunPropagatesErrors(t *testing.T) {
	t.Run("input", func(t *testing.T) {
		s := NewSession(DefaultConfig(), testLogger())
		boom := errors.New("tty gone")
		err := s.Run(context.Background(), &scriptedSource{err: boom}, &recordingRenderer{})
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("render", func(t *testing.T) {
		s := NewSession(DefaultConfig(), testLogger())
		boom := errors.New("screen closed")
		err := s.Run(context.Background(), &scriptedSource{}, &recordingRenderer{err: boom})
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})
}

func TestRunStopsOnCancel(t *testing.T) {
	s := NewSession(DefaultConfig(), testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &recordingRenderer{}
	require.NoError(t, s.Run(ctx, &scriptedSource{}, r))
	assert.Equal(t, 0, r.frames)
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "place", Place.String())
	assert.Equal(t, "quit", Quit.String())
	assert.Equal(t, "unknown", Command(99).String())
}
