package game

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-tui/internal/board"
)

func newMatch(t *testing.T, w, h, mines int) *Match {
	t.Helper()
	m, err := New(w, h, mines, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	return m
}

// matchWithMineAt retries seeds until the single mine lands on (mx, my)
// with the board anchored at the current (0, 0) cursor. The first reveal
// happens as part of anchoring.
func matchWithMineAt(t *testing.T, w, h, mx, my int) *Match {
	t.Helper()
	for seed := uint64(0); seed < 10_000; seed++ {
		m, err := New(w, h, 1, rand.New(rand.NewPCG(seed, 0)))
		require.NoError(t, err)
		m.Reveal()
		if m.TileAt(mx, my).Content.IsMine() {
			return m
		}
	}
	t.Fatalf("no seed puts the mine at (%d,%d)", mx, my)
	return nil
}

func TestNewRejectsBadConfigurations(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	_, err := New(3, 3, 9, r)
	assert.ErrorIs(t, err, board.ErrTooManyMines)
	_, err = New(3, 3, -1, r)
	assert.ErrorContains(t, err, "negative mine count")
	assert.NotErrorIs(t, err, board.ErrTooManyMines)
	_, err = New(0, 3, 0, r)
	assert.Error(t, err)
}

func TestMoveCursorSaturates(t *testing.T) {
	m := newMatch(t, 3, 2, 1)

	m.MoveCursor(Up)
	m.MoveCursor(Left)
	x, y := m.Cursor()
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})

	for range 10 {
		m.MoveCursor(Right)
		m.MoveCursor(Down)
	}
	x, y = m.Cursor()
	assert.Equal(t, [2]int{2, 1}, [2]int{x, y})

	m.MoveCursor(Left)
	x, _ = m.Cursor()
	assert.Equal(t, 1, x)
}

func TestFirstActionStartsMatch(t *testing.T) {
	t.Run("reveal", func(t *testing.T) {
		m := newMatch(t, 9, 9, 10)
		_, status := m.Status()
		require.Equal(t, NotStarted, status)

		m.Reveal()
		_, status = m.Status()
		assert.Equal(t, InProgress, status)
		assert.Equal(t, board.Revealed, m.TileAt(0, 0).Mode)
		assert.False(t, m.TileAt(0, 0).Content.IsMine(), "first reveal must be safe")
	})

	t.Run("flag only starts, never flags", func(t *testing.T) {
		m := newMatch(t, 9, 9, 10)
		m.Flag()
		_, status := m.Status()
		assert.Equal(t, InProgress, status)
		assert.Equal(t, 10, m.UnflaggedMines(), "the starting action placed a flag")
	})
}

func TestTileAtSentinelBeforeStart(t *testing.T) {
	m := newMatch(t, 5, 5, 5)
	tile := m.TileAt(3, 4)
	assert.Equal(t, board.Concealed, tile.Mode)
	assert.True(t, tile.Content.IsField())
	assert.Equal(t, 0, tile.Content.Count())
}

func TestSingleTileBoardWinsInstantly(t *testing.T) {
	m := newMatch(t, 1, 1, 0)
	m.Reveal()
	elapsed, status := m.Status()
	assert.Equal(t, Won, status)
	assert.GreaterOrEqual(t, elapsed, time.Duration(0))
}

func TestCornerMineCascadeWins(t *testing.T) {
	m := matchWithMineAt(t, 3, 3, 2, 2)
	_, status := m.Status()
	assert.Equal(t, Won, status, "cascade from (0,0) must clear all 8 fields")
	assert.Equal(t, board.Revealed, m.TileAt(2, 2).Mode, "mine shown after the win sweep")
}

func TestLoss(t *testing.T) {
	m := newMatch(t, 9, 9, 10)
	frozen := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return frozen }
	m.Reveal()
	_, status := m.Status()
	require.Equal(t, InProgress, status)

	// flag one safe concealed tile, then step on a mine
	var fx, fy, mx, my = -1, -1, -1, -1
	for y := range 9 {
		for x := range 9 {
			tile := m.TileAt(x, y)
			if tile.Mode != board.Concealed {
				continue
			}
			if tile.Content.IsMine() && mx < 0 {
				mx, my = x, y
			} else if tile.Content.IsField() && fx < 0 {
				fx, fy = x, y
			}
		}
	}
	require.GreaterOrEqual(t, mx, 0)
	require.GreaterOrEqual(t, fx, 0)

	m.cursorX, m.cursorY = fx, fy
	m.Flag()
	frozen = frozen.Add(3 * time.Second)

	m.cursorX, m.cursorY = mx, my
	m.Reveal()

	elapsed, status := m.Status()
	assert.Equal(t, Lost, status)
	assert.Equal(t, 3*time.Second, elapsed)

	kind, ok := m.TileAt(mx, my).Content.Mistake()
	require.True(t, ok, "tripped mine not marked")
	assert.Equal(t, board.TrippedMine, kind)

	kind, ok = m.TileAt(fx, fy).Content.Mistake()
	require.True(t, ok, "wrong flag not marked")
	assert.Equal(t, board.FlaggedField, kind)

	// every mine is shown after the sweep
	for y := range 9 {
		for x := range 9 {
			tile := m.TileAt(x, y)
			if tile.Content.IsMine() {
				assert.Equal(t, board.Revealed, tile.Mode, "mine (%d,%d) still hidden", x, y)
			}
		}
	}

	// the clock stays frozen no matter how late we ask
	frozen = frozen.Add(time.Hour)
	elapsed, _ = m.Status()
	assert.Equal(t, 3*time.Second, elapsed)
}

func TestUnflaggedMines(t *testing.T) {
	m := newMatch(t, 9, 9, 10)
	assert.Equal(t, 10, m.UnflaggedMines(), "full budget before start")

	m.Reveal()
	require.Equal(t, 10, m.UnflaggedMines())

	// find two concealed tiles to flag
	flagged := 0
	for y := 0; y < 9 && flagged < 2; y++ {
		for x := 0; x < 9 && flagged < 2; x++ {
			if m.TileAt(x, y).Mode == board.Concealed {
				m.cursorX, m.cursorY = x, y
				m.Flag()
				flagged++
			}
		}
	}
	assert.Equal(t, 8, m.UnflaggedMines())

	m.Flag() // unflag the last one
	assert.Equal(t, 9, m.UnflaggedMines())
}

func TestFinishedMatchResets(t *testing.T) {
	m := newMatch(t, 1, 1, 0)
	m.Reveal()
	_, status := m.Status()
	require.Equal(t, Won, status)

	m.Flag()
	elapsed, status := m.Status()
	assert.Equal(t, NotStarted, status)
	assert.Zero(t, elapsed)
	assert.Equal(t, board.Concealed, m.TileAt(0, 0).Mode, "board must be gone after reset")

	m.Reveal()
	_, status = m.Status()
	assert.Equal(t, Won, status, "a reset match starts a fresh round")
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "not started", NotStarted.String())
	assert.Equal(t, "in progress", InProgress.String())
	assert.Equal(t, "won", Won.String())
	assert.Equal(t, "lost", Lost.String())
}
