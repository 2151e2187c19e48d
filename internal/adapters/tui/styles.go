package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/responsive/internal/ui/style"
)

var (
	// Header Styles.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	labelStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	// Row Styles.
	activeStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	aboveStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	belowStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	guessStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	tableStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(style.Slate).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true).
			MarginTop(1)
)
