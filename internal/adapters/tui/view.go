package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/responsive/internal/ui/style"
)

// View renders the current state of the model as a string.
//
//nolint:gocritic // hugeParam ignored
func (m Model) View() string {
	if m.Snapshot == nil {
		return m.Spinner.View() + " Waiting for the first snapshot..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header(),
		tableStyle.Render(m.table()),
		helpStyle.Render("q quit"),
	)
}

func (m Model) header() string {
	snap := m.Snapshot

	media := activeStyle.Render(snap.MediaType())
	if !snap.IsCalculated() {
		media = m.Spinner.View() + " " + guessStyle.Render(snap.MediaType()+" (guess)")
	}

	lines := []string{
		titleStyle.Render("RESPONSIVE"),
		"",
		labelStyle.Render("media type  ") + media,
		labelStyle.Render("orientation ") + snap.Orientation().String(),
		labelStyle.Render("mobile      ") + fmt.Sprintf("%s (below %s)", style.Mark(snap.IsMobile()), snap.MobileBreakpoint()),
	}
	if m.Width > 0 {
		lines = append(lines, labelStyle.Render("size        ")+fmt.Sprintf("%dx%d", m.Width, m.Height))
	}
	return strings.Join(lines, "\n")
}

func (m Model) table() string {
	var s strings.Builder

	s.WriteString(labelStyle.Render(fmt.Sprintf("  %-12s %-3s %-3s %-3s", "breakpoint", "is", "gt", "lt")) + "\n")

	snap := m.Snapshot
	for _, name := range m.Names {
		var (
			rowStyle lipgloss.Style
			marker   string
		)
		switch {
		case snap.Is(name):
			rowStyle = activeStyle
			marker = style.Arrow
		case snap.GreaterThan(name):
			rowStyle = aboveStyle
			marker = style.Up
		case snap.LessThan(name):
			rowStyle = belowStyle
			marker = style.Down
		default:
			rowStyle = belowStyle
			marker = " "
		}

		line := fmt.Sprintf("%s %-12s %-3s %-3s %-3s",
			marker,
			name,
			style.Mark(snap.Is(name)),
			style.Mark(snap.GreaterThan(name)),
			style.Mark(snap.LessThan(name)),
		)
		s.WriteString(rowStyle.Render(line) + "\n")
	}

	return strings.TrimSuffix(s.String(), "\n")
}
