package provider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/responsive/internal/core/domain"
	"go.trai.ch/responsive/internal/engine/provider"
	"go.trai.ch/responsive/internal/engine/tracker"
)

func descriptors(t *testing.T, bps ...domain.Breakpoint) *domain.Descriptors {
	t.Helper()
	set, err := domain.NewWidthSet(bps...)
	require.NoError(t, err)
	return domain.BuildDescriptors(set.Queries())
}

func TestAssembler_ReusesSnapshotForEqualInput(t *testing.T) {
	ds := descriptors(t,
		domain.Breakpoint{Name: "s", MinWidth: 0},
		domain.Breakpoint{Name: "l", MinWidth: 800},
	)

	var a provider.Assembler
	first := a.Assemble(ds, tracker.State{Active: "s"}, domain.OrientationPortrait, "l")
	second := a.Assemble(ds, tracker.State{Active: "s"}, domain.OrientationPortrait, "l")
	assert.Same(t, first, second)

	measured := a.Assemble(ds, tracker.State{Active: "s", Measured: true}, domain.OrientationPortrait, "l")
	assert.NotSame(t, first, measured)
	assert.True(t, measured.IsCalculated())
	assert.True(t, measured.IsMobile())

	turned := a.Assemble(ds, tracker.State{Active: "s", Measured: true}, domain.OrientationLandscape, "l")
	assert.NotSame(t, measured, turned)
	assert.Equal(t, domain.OrientationLandscape, turned.Orientation())
}

func TestAssembler_RecomputesOnDescriptorChange(t *testing.T) {
	before := descriptors(t,
		domain.Breakpoint{Name: "s", MinWidth: 0},
		domain.Breakpoint{Name: "l", MinWidth: 800},
	)
	after := descriptors(t,
		domain.Breakpoint{Name: "s", MinWidth: 0},
		domain.Breakpoint{Name: "m", MinWidth: 400},
		domain.Breakpoint{Name: "l", MinWidth: 800},
	)

	var a provider.Assembler
	state := tracker.State{Active: "l", Measured: true}
	snap := a.Assemble(before, state, domain.OrientationUnset, "l")
	assert.Equal(t, map[string]bool{"s": true, "l": false}, snap.Comparison().GreaterThan)

	snap = a.Assemble(after, state, domain.OrientationUnset, "l")
	assert.Equal(t, map[string]bool{"s": true, "m": true, "l": false}, snap.Comparison().GreaterThan)
	assert.False(t, snap.IsMobile())
}
