package tui

import (
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/responsive/internal/core/domain"
)

// Resizer receives the size of the terminal window.
type Resizer interface {
	Resize(width, height int)
}

// MsgConfigure carries the breakpoint names of a new configuration.
type MsgConfigure struct {
	Names []string
}

// MsgSnapshot carries a newly published snapshot.
type MsgSnapshot struct {
	Snapshot *domain.Snapshot
}

// Model represents the main TUI state.
type Model struct {
	Names    []string
	Snapshot *domain.Snapshot
	Width    int
	Height   int
	Spinner  spinner.Model

	resizer *orderedResizer
}

// Init starts the spinner shown until the first measurement.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Init() tea.Cmd {
	return m.Spinner.Tick
}

// Update handles incoming messages and updates the model state.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, m.resize(msg.Width, msg.Height)

	case MsgConfigure:
		m.Names = msg.Names

	case MsgSnapshot:
		m.Snapshot = msg.Snapshot

	case spinner.TickMsg:
		if m.Snapshot != nil && m.Snapshot.IsCalculated() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// resize runs outside the event loop: the resize publishes snapshots that
// are sent back to the program.
func (m Model) resize(width, height int) tea.Cmd {
	if m.resizer == nil {
		return nil
	}
	r := m.resizer
	seq := r.issued.Add(1)
	return func() tea.Msg {
		r.apply(seq, width, height)
		return nil
	}
}

// orderedResizer forwards sizes in the order the window reported them.
// Commands run concurrently, so a size older than the last one applied is
// dropped.
type orderedResizer struct {
	target Resizer
	issued atomic.Uint64

	mu      sync.Mutex
	applied uint64
}

func (r *orderedResizer) apply(seq uint64, width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if seq <= r.applied {
		return
	}
	r.applied = seq
	r.target.Resize(width, height)
}
