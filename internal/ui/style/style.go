// Package style provides the colors and glyphs shared by the logger, the
// command output and the interactive view.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
	Up      = "▲"
	Down    = "▼"
	Arrow   = "→"
)

// Mark returns the glyph for a boolean relation.
func Mark(ok bool) string {
	if ok {
		return Dot
	}
	return Circle
}
