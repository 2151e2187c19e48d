package provider

import (
	"go.trai.ch/responsive/internal/core/domain"
	"go.trai.ch/responsive/internal/engine/tracker"
)

// Assembler merges the tracker states into snapshots. It hands out the
// previous snapshot again while nothing changed by value, and recomputes the
// comparison only when the active breakpoint or the descriptor list changes.
type Assembler struct {
	descriptors *domain.Descriptors
	active      string
	comparison  domain.Comparison
	compared    bool

	last *domain.Snapshot
}

// Assemble returns the snapshot for the given inputs.
func (a *Assembler) Assemble(
	ds *domain.Descriptors,
	state tracker.State,
	orientation domain.Orientation,
	mobileBreakpoint string,
) *domain.Snapshot {
	if !a.compared || ds != a.descriptors || state.Active != a.active {
		a.comparison = domain.Compare(state.Active, ds)
		a.descriptors = ds
		a.active = state.Active
		a.compared = true
	}

	in := domain.SnapshotInput{
		MediaType:        state.Active,
		Orientation:      orientation,
		IsCalculated:     state.Measured,
		MobileBreakpoint: mobileBreakpoint,
		Comparison:       a.comparison,
	}
	if a.last != nil && a.last.Matches(in) {
		return a.last
	}
	a.last = domain.NewSnapshot(in)
	return a.last
}
