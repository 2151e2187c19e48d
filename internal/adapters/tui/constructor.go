// Package tui provides the interactive view of the live responsive state.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/responsive/internal/ui/style"
)

// NewModel creates a model that forwards window sizes to resizer.
// resizer may be nil when the size is measured elsewhere.
func NewModel(resizer Resizer) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(style.Yellow)

	m := Model{
		Names:   make([]string, 0),
		Spinner: s,
	}
	if resizer != nil {
		m.resizer = &orderedResizer{target: resizer}
	}
	return m
}
