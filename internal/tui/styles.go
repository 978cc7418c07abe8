package tui

import "github.com/charmbracelet/lipgloss"

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	hiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	flagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	mineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	trippedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("196")).
			Foreground(lipgloss.Color("231")).
			Bold(true)
	wrongFlagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Strikethrough(true)

	cursorStyle = lipgloss.NewStyle().Reverse(true)

	// classic minesweeper number palette, indexed by count-1
	numStyles = [8]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("19")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("88")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}

	hudLabelStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("255")).
			Bold(true).
			Padding(0, 1)
	hudValueStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	wonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	lostStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)
