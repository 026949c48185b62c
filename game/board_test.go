package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard(DefaultSize)
	require.Equal(t, DefaultSize, b.Size())
	for row := 0; row < b.Size(); row++ {
		for col := 0; col < b.Size(); col++ {
			require.Equal(t, Empty, b.At(row, col), "cell (%d, %d)", row, col)
		}
	}
}

func TestNewBoardRejectsInvalidSize(t *testing.T) {
	assert.Panics(t, func() { NewBoard(0) })
	assert.Panics(t, func() { NewBoard(-3) })
}

func TestBoardBoundsChecked(t *testing.T) {
	b := NewBoard(5)
	assert.True(t, b.InBounds(0, 0))
	assert.True(t, b.InBounds(4, 4))
	assert.False(t, b.InBounds(5, 0))
	assert.False(t, b.InBounds(0, -1))

	assert.Panics(t, func() { b.At(5, 0) })
	assert.Panics(t, func() { b.At(-1, 2) })
	assert.Panics(t, func() { b.set(2, 5, StoneA) })
}

func TestCellPlayer(t *testing.T) {
	p, ok := StoneA.Player()
	require.True(t, ok)
	assert.Equal(t, PlayerA, p)

	p, ok = StoneB.Player()
	require.True(t, ok)
	assert.Equal(t, PlayerB, p)

	_, ok = Empty.Player()
	assert.False(t, ok)
}

func TestPlayerOther(t *testing.T) {
	assert.Equal(t, PlayerB, PlayerA.Other())
	assert.Equal(t, PlayerA, PlayerB.Other())
	assert.Panics(t, func() { noPlayer.Other() })
	assert.Equal(t, "X", PlayerA.String())
	assert.Equal(t, "O", PlayerB.String())
}

func TestCursorWrapsAndRoundTrips(t *testing.T) {
	for _, size := range []int{1, 2, 5, DefaultSize} {
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				start := Pos{Row: row, Col: col}
				for _, pair := range [][2]Direction{{Up, Down}, {Down, Up}, {Left, Right}, {Right, Left}} {
					moved := start.Step(pair[0], size)
					require.True(t, moved.Row >= 0 && moved.Row < size, "row %d out of range", moved.Row)
					require.True(t, moved.Col >= 0 && moved.Col < size, "col %d out of range", moved.Col)
					require.Equal(t, start, moved.Step(pair[1], size), "size %d from %v via %v", size, start, pair)
				}
			}
		}
	}
}

func TestCursorWrapsAtEdges(t *testing.T) {
	tests := []struct {
		name string
		from Pos
		dir  Direction
		want Pos
	}{
		{"up from top", Pos{0, 3}, Up, Pos{9, 3}},
		{"down from bottom", Pos{9, 3}, Down, Pos{0, 3}},
		{"left from first column", Pos{4, 0}, Left, Pos{4, 9}},
		{"right from last column", Pos{4, 9}, Right, Pos{4, 0}},
		{"plain step", Pos{4, 4}, Right, Pos{4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Step(tt.dir, DefaultSize))
		})
	}
}
