// Package tui renders a match in the terminal and maps key presses onto
// the engine's intents. It talks to internal/game only through its public
// queries and intents.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-tui/internal/board"
	"github.com/vancomm/minesweeper-tui/internal/game"
	"github.com/vancomm/minesweeper-tui/internal/records"
)

var Log = logrus.New()

type Model struct {
	match *game.Match
	store *records.Store // nil disables best-time tracking
	keys  KeyMap
	help  help.Model
	best  []records.Record
}

func New(match *game.Match, store *records.Store) Model {
	m := Model{
		match: match,
		store: store,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
	if store != nil {
		w, h := match.Size()
		best, err := store.Best(w, h, match.MineCount())
		if err != nil && err != records.ErrNotFound {
			Log.WithError(err).Warn("unable to load best times")
		}
		m.best = best
	}
	return m
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type bestMsg struct {
	records []records.Record
	err     error
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// The HUD clock only needs a redraw; elapsed time is computed by
		// the engine on demand.
		return m, tickCmd()

	case bestMsg:
		if msg.err != nil {
			Log.WithError(msg.err).Warn("unable to save best time")
			return m, nil
		}
		m.best = msg.records
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.match.MoveCursor(game.Up)
		case key.Matches(msg, m.keys.Down):
			m.match.MoveCursor(game.Down)
		case key.Matches(msg, m.keys.Left):
			m.match.MoveCursor(game.Left)
		case key.Matches(msg, m.keys.Right):
			m.match.MoveCursor(game.Right)
		case key.Matches(msg, m.keys.Reveal):
			return m.act((*game.Match).Reveal)
		case key.Matches(msg, m.keys.Flag):
			return m.act((*game.Match).Flag)
		case key.Matches(msg, m.keys.New):
			if _, status := m.match.Status(); finishedStatus(status) {
				// one action resets a finished match to not-started
				m.match.Reveal()
			}
		}
	}
	return m, nil
}

func finishedStatus(s game.Status) bool {
	return s == game.Won || s == game.Lost
}

// act forwards an intent to the engine and, when the action just won the
// round, persists the time in the background. The very first action can
// already win (a mine-less board or a full cascade), so any transition
// into Won counts.
func (m Model) act(intent func(*game.Match)) (tea.Model, tea.Cmd) {
	_, before := m.match.Status()
	intent(m.match)
	elapsed, after := m.match.Status()
	if after != game.Won || before == game.Won || m.store == nil {
		return m, nil
	}
	rec := records.Record{Playtime: elapsed, WonAt: time.Now()}
	w, h := m.match.Size()
	mines := m.match.MineCount()
	return m, func() tea.Msg {
		best, err := m.store.Add(w, h, mines, rec)
		return bestMsg{records: best, err: err}
	}
}

func (m Model) View() string {
	w, h := m.match.Size()
	cx, cy := m.match.Cursor()

	var grid strings.Builder
	for y := range h {
		for x := range w {
			glyph, style := tileView(m.match.TileAt(x, y))
			cell := " " + glyph + " "
			if x == cx && y == cy {
				grid.WriteString(cursorStyle.Render(cell))
			} else {
				grid.WriteString(style.Render(cell))
			}
		}
		if y < h-1 {
			grid.WriteString("\n")
		}
	}

	elapsed, status := m.match.Status()
	hud := lipgloss.JoinHorizontal(lipgloss.Top,
		hudLabelStyle.Render("MINES"),
		hudValueStyle.Render(fmt.Sprintf("%d", m.match.UnflaggedMines())),
		" ",
		hudLabelStyle.Render("TIME"),
		hudValueStyle.Render(formatElapsed(elapsed)),
		" ",
		hudLabelStyle.Render("STATUS"),
		hudValueStyle.Render(statusText(status)),
	)

	sections := []string{
		boardStyle.Render(grid.String()),
		hud,
	}
	if len(m.best) > 0 {
		sections = append(sections, hiddenStyle.Render(
			"best "+formatElapsed(m.best[0].Playtime),
		))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func tileView(t board.Tile) (string, lipgloss.Style) {
	switch t.Mode {
	case board.Concealed:
		return "■", hiddenStyle
	case board.Flagged:
		return "⚑", flagStyle
	}
	c := t.Content
	switch {
	case c.IsMine():
		return "*", mineStyle
	case c.IsMistake():
		if kind, _ := c.Mistake(); kind == board.TrippedMine {
			return "*", trippedStyle
		}
		return "⚑", wrongFlagStyle
	case c.Count() == 0:
		return "·", hiddenStyle
	default:
		return fmt.Sprintf("%d", c.Count()), numStyles[c.Count()-1]
	}
}

func statusText(s game.Status) string {
	switch s {
	case game.Won:
		return wonStyle.Render("WON")
	case game.Lost:
		return lostStyle.Render("LOST")
	case game.InProgress:
		return "PLAYING"
	default:
		return "READY"
	}
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
