package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gobang/config"
	"gobang/engine"
	"gobang/game"
)

// ErrInputClosed is returned by Next once the screen stops delivering events.
var ErrInputClosed = errors.New("terminal input closed")

// Terminal owns the tcell screen. It renders game states through a tview
// layout and turns key events into engine commands.
type Terminal struct {
	screen    tcell.Screen
	board     *GoBoardUI
	infoPanel *GameInfoPanel
	hint      *tview.TextView
	frame     *tview.Flex
	size      int

	events chan tcell.Event
	quit   chan struct{}
}

// NewTerminal wraps screen. Pass nil to use the real terminal.
func NewTerminal(screen tcell.Screen, c *config.Config) (*Terminal, error) {
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("failed to create screen: %w", err)
		}
	}

	hint := tview.NewTextView()
	hint.SetBorderPadding(0, 0, 1, 1)

	return &Terminal{
		screen:    screen,
		board:     NewGoBoard(c),
		infoPanel: NewGameInfoPanel(),
		hint:      hint,
		events:    make(chan tcell.Event, 16),
		quit:      make(chan struct{}),
	}, nil
}

// Start puts the terminal into raw mode on the alternate screen and starts
// reading events.
func (t *Terminal) Start() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise screen: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	go t.pump()
	return nil
}

// Stop restores the terminal. The event reader exits once the screen is gone.
func (t *Terminal) Stop() {
	close(t.quit)
	t.screen.Fini()
}

func (t *Terminal) pump() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

// Next waits up to timeout for a key press that maps to a command. Other
// events, such as resizes, end the wait early so the caller redraws.
func (t *Terminal) Next(timeout time.Duration) (engine.Command, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-t.events:
		if !ok {
			return 0, false, ErrInputClosed
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			cmd, ok := CommandForKey(ev)
			return cmd, ok, nil
		case *tcell.EventResize:
			t.screen.Sync()
		}
		return 0, false, nil
	case <-timer.C:
		return 0, false, nil
	}
}

// Render draws one frame of state.
func (t *Terminal) Render(state *game.State) error {
	if state == nil {
		return errors.New("no game to render")
	}
	t.board.SetState(state)
	if t.frame == nil || t.size != state.Size() {
		t.size = state.Size()
		t.frame = CreateGameLayout(t.board, t.infoPanel, t.hint)
	}
	t.infoPanel.SetState(state)
	t.hint.SetText(hintText(state))

	w, h := t.screen.Size()
	t.screen.Clear()
	t.frame.SetRect(0, 0, w, h)
	t.frame.Draw(t.screen)
	t.screen.Show()
	return nil
}
