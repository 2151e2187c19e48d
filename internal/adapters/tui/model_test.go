package tui_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/responsive/internal/adapters/tui"
	"go.trai.ch/responsive/internal/core/domain"
)

type recordingResizer struct {
	sizes [][2]int
}

func (r *recordingResizer) Resize(width, height int) {
	r.sizes = append(r.sizes, [2]int{width, height})
}

func snapshot(active string, calculated bool) *domain.Snapshot {
	names := []string{"xs", "sm", "md"}
	c := domain.Comparison{
		Is:          map[string]bool{},
		GreaterThan: map[string]bool{},
		LessThan:    map[string]bool{},
	}
	idx := -1
	for i, n := range names {
		if n == active {
			idx = i
		}
	}
	for i, n := range names {
		c.Is[n] = i == idx
		c.GreaterThan[n] = idx >= 0 && i < idx
		c.LessThan[n] = idx >= 0 && i > idx
	}
	return domain.NewSnapshot(domain.SnapshotInput{
		MediaType:        active,
		Orientation:      domain.OrientationLandscape,
		IsCalculated:     calculated,
		MobileBreakpoint: "md",
		Comparison:       c,
	})
}

func TestNewModel(t *testing.T) {
	m := tui.NewModel(nil)

	assert.NotNil(t, m.Names)
	assert.Empty(t, m.Names)
	assert.Nil(t, m.Snapshot)
	assert.NotNil(t, m.Init())
}

func TestModel_WindowSizeResizes(t *testing.T) {
	r := &recordingResizer{}
	m := tui.NewModel(r)

	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	got := updated.(tui.Model)
	assert.Equal(t, 120, got.Width)
	assert.Equal(t, 40, got.Height)

	require.NotNil(t, cmd)
	assert.Empty(t, r.sizes, "resize runs as a command")
	assert.Nil(t, cmd())
	assert.Equal(t, [][2]int{{120, 40}}, r.sizes)
}

func TestModel_StaleResizeDropped(t *testing.T) {
	r := &recordingResizer{}
	var m tea.Model = tui.NewModel(r)

	m, first := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m, second := m.Update(tea.WindowSizeMsg{Width: 140, Height: 50})
	require.NotNil(t, first)
	require.NotNil(t, second)

	// The later size lands first; the earlier one must not overwrite it.
	assert.Nil(t, second())
	assert.Nil(t, first())
	assert.Equal(t, [][2]int{{140, 50}}, r.sizes)
	assert.Equal(t, 140, m.(tui.Model).Width)
}

func TestModel_WindowSizeWithoutResizer(t *testing.T) {
	m := tui.NewModel(nil)
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, 80, updated.(tui.Model).Width)
}

func TestModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		t.Run(key.String(), func(t *testing.T) {
			_, cmd := tui.NewModel(nil).Update(key)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestModel_Messages(t *testing.T) {
	var m tea.Model = tui.NewModel(nil)

	m, _ = m.Update(tui.MsgConfigure{Names: []string{"xs", "sm", "md"}})
	snap := snapshot("sm", true)
	m, _ = m.Update(tui.MsgSnapshot{Snapshot: snap})

	got := m.(tui.Model)
	assert.Equal(t, []string{"xs", "sm", "md"}, got.Names)
	assert.Same(t, snap, got.Snapshot)
}

func TestModel_SpinnerStopsAfterMeasurement(t *testing.T) {
	m := tui.NewModel(nil)

	m.Snapshot = snapshot("xs", false)
	_, cmd := m.Update(spinner.TickMsg{ID: m.Spinner.ID()})
	assert.NotNil(t, cmd, "spinner keeps ticking while guessing")

	m.Snapshot = snapshot("xs", true)
	_, cmd = m.Update(spinner.TickMsg{ID: m.Spinner.ID()})
	assert.Nil(t, cmd)
}
