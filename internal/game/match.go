// Package game owns the match state machine around a single board: the
// not-started / in-progress / finished lifecycle, the cursor, the mine
// budget and the elapsed clock. The board itself lives in internal/board.
package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/vancomm/minesweeper-tui/internal/board"
)

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

type Status int

const (
	NotStarted Status = iota
	InProgress
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// phase is a tagged union: each variant carries exactly the data that is
// valid for it. At most one board exists at a time, owned by the variant
// holding it.
type phase interface{ isPhase() }

type notStarted struct{}

type inProgress struct {
	board     *board.Board
	startedAt time.Time
}

type finished struct {
	board   *board.Board
	elapsed time.Duration
}

func (notStarted) isPhase() {}
func (inProgress) isPhase() {}
func (finished) isPhase()   {}

// Match drives one game session. A finished match resets to not-started on
// the next flag or reveal action, so the same Match serves any number of
// rounds with the same configuration. Match is not safe for concurrent
// use; a single input loop is expected to drive it.
type Match struct {
	cursorX, cursorY int
	width, height    int
	mineCount        int
	phase            phase
	rng              *rand.Rand
	now              func() time.Time
}

// New creates a not-started match. The board is generated lazily on the
// first flag or reveal, anchored at the then-current cursor so the first
// revealed tile is never a mine.
func New(width, height, mineCount int, r *rand.Rand) (*Match, error) {
	// Surface bad configurations here instead of at first move.
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid board size %dx%d", width, height)
	}
	if mineCount < 0 {
		return nil, fmt.Errorf("negative mine count %d", mineCount)
	}
	if mineCount >= width*height {
		return nil, board.ErrTooManyMines
	}
	return &Match{
		width:     width,
		height:    height,
		mineCount: mineCount,
		phase:     notStarted{},
		rng:       r,
		now:       time.Now,
	}, nil
}

func (m *Match) Cursor() (x, y int) { return m.cursorX, m.cursorY }
func (m *Match) Size() (w, h int)   { return m.width, m.height }
func (m *Match) MineCount() int     { return m.mineCount }

// MoveCursor shifts the cursor one tile in the given direction, saturating
// at the board edges. It is valid in every phase and never changes phase.
func (m *Match) MoveCursor(d Direction) {
	switch d {
	case Up:
		m.cursorY--
	case Down:
		m.cursorY++
	case Left:
		m.cursorX--
	case Right:
		m.cursorX++
	}
	m.cursorX = min(max(m.cursorX, 0), m.width-1)
	m.cursorY = min(max(m.cursorY, 0), m.height-1)
}

// Flag toggles the flag under the cursor. On a not-started match it only
// starts the round; on a finished match it resets to not-started.
func (m *Match) Flag() {
	p, ok := m.phase.(inProgress)
	if !ok {
		m.advance()
		return
	}
	p.board.ToggleFlag(m.cursorX, m.cursorY)
	m.evaluate(p)
}

// Reveal reveals the tile under the cursor, with the same start/reset
// behavior as Flag on a not-started or finished match.
func (m *Match) Reveal() {
	p, ok := m.phase.(inProgress)
	if !ok {
		m.advance()
		return
	}
	p.board.Reveal(m.cursorX, m.cursorY)
	m.evaluate(p)
}

// advance moves a match that is between rounds: not-started starts a fresh
// board anchored at the cursor, finished resets for the next round. The
// initial reveal can already satisfy the win condition (a mine-less board),
// so the new board is evaluated right away.
func (m *Match) advance() {
	switch m.phase.(type) {
	case notStarted:
		b, err := board.New(m.width, m.height, m.cursorX, m.cursorY, m.mineCount, m.rng)
		if err != nil {
			// New validated the configuration up front.
			panic(err)
		}
		p := inProgress{board: b, startedAt: m.now()}
		m.phase = p
		m.evaluate(p)
	case finished:
		m.phase = notStarted{}
	}
}

// evaluate checks the terminal conditions after any in-progress mutation.
// Win: every field tile revealed. Loss: any revealed mine. Either one
// freezes the clock and runs the finish sweep; win vs. loss is derived
// later from the swept board, not stored.
func (m *Match) evaluate(p inProgress) {
	if !p.board.Dead() && !p.board.Cleared() {
		return
	}
	elapsed := m.now().Sub(p.startedAt)
	p.board.Sweep()
	m.phase = finished{board: p.board, elapsed: elapsed}
}

// Status reports the elapsed time and the coarse match state. The clock is
// live while in progress, frozen once finished and zero before the first
// action.
func (m *Match) Status() (time.Duration, Status) {
	switch p := m.phase.(type) {
	case inProgress:
		return m.now().Sub(p.startedAt), InProgress
	case finished:
		if p.board.HasMistakes() {
			return p.elapsed, Lost
		}
		return p.elapsed, Won
	default:
		return 0, NotStarted
	}
}

// UnflaggedMines is the mine budget minus the number of placed flags. It
// goes negative when the player over-flags, and equals the full budget
// while no board exists.
func (m *Match) UnflaggedMines() int {
	switch p := m.phase.(type) {
	case inProgress:
		return m.mineCount - p.board.Flags()
	case finished:
		return m.mineCount - p.board.Flags()
	default:
		return m.mineCount
	}
}

// TileAt returns a snapshot of the tile at (x, y). Before a board exists
// every position reads as a concealed Field(0) placeholder.
func (m *Match) TileAt(x, y int) board.Tile {
	switch p := m.phase.(type) {
	case inProgress:
		return p.board.At(x, y)
	case finished:
		return p.board.At(x, y)
	default:
		return board.Tile{}
	}
}
