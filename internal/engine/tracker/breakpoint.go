// Package tracker keeps live subscriptions to the viewport and maintains the
// active breakpoint and the orientation derived from them.
package tracker

import (
	"sync"

	"go.trai.ch/responsive/internal/core/domain"
	"go.trai.ch/responsive/internal/core/ports"
	"go.trai.ch/responsive/internal/engine/subscription"
	"go.trai.ch/zerr"
)

// State is the breakpoint tracker's observable state.
type State struct {
	// Active is the active breakpoint name, or the initial guess before the
	// first measurement.
	Active string
	// Measured reports whether Active comes from a real match.
	Measured bool
}

// BreakpointTracker subscribes to the range query of every descriptor and
// records which one the viewport currently falls into.
//
// The ranges of a descriptor list never overlap, so only entering events are
// acted upon: leaving one range always comes with entering another.
//
// The media matcher must not hold its own locks while delivering events.
type BreakpointTracker struct {
	matcher  ports.MediaMatcher
	logger   ports.Logger
	onChange func(State)

	mu          sync.Mutex
	state       State
	descriptors *domain.Descriptors
	generation  uint64
	cancels     []func()
}

// NewBreakpointTracker creates a tracker reporting initial as the active
// breakpoint until a measurement happens. onChange is called, without any lock
// held, after every state change caused by a viewport event; it may be nil.
func NewBreakpointTracker(
	matcher ports.MediaMatcher,
	logger ports.Logger,
	initial string,
	onChange func(State),
) *BreakpointTracker {
	return &BreakpointTracker{
		matcher:  matcher,
		logger:   logger,
		onChange: onChange,
		state:    State{Active: initial},
	}
}

// State returns the current state.
func (t *BreakpointTracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Descriptors returns the descriptor list the tracker is mounted on.
func (t *BreakpointTracker) Descriptors() *domain.Descriptors {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.descriptors
}

// Guess replaces the initial guess. It has no effect once a measurement happened.
func (t *BreakpointTracker) Guess(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.state.Measured {
		t.state.Active = name
	}
}

// Mount subscribes to every descriptor of ds. Mounting the list the tracker is
// already mounted on does nothing; mounting a different list first removes
// every subscription of the previous one.
func (t *BreakpointTracker) Mount(ds *domain.Descriptors) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if ds == t.descriptors && t.cancels != nil {
		return
	}
	t.unmountLocked()

	t.descriptors = ds
	t.cancels = make([]func(), 0, ds.Len())

	for d := range ds.All() {
		cancel, err := t.subscribeLocked(d)
		if err != nil {
			t.logger.Warn(zerr.With(err, "breakpoint", d.Name).Error())
			continue
		}
		t.cancels = append(t.cancels, cancel)
	}
}

// Unmount removes every subscription. The state is kept.
func (t *BreakpointTracker) Unmount() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.unmountLocked()
}

func (t *BreakpointTracker) unmountLocked() {
	for _, cancel := range t.cancels {
		cancel()
	}
	t.cancels = nil
	t.generation++
}

func (t *BreakpointTracker) subscribeLocked(d domain.Descriptor) (func(), error) {
	if t.matcher == nil {
		return nil, domain.ErrViewportUnavailable
	}

	list, err := t.matcher.MatchMedia(d.Query)
	if err != nil {
		return nil, err
	}

	name, generation := d.Name, t.generation
	listener := ports.NewListener(func(ev ports.MediaQueryEvent) {
		if ev.Matches {
			t.enter(name, generation)
		}
	})

	// Measure after subscribing so a resize landing in between is not lost.
	// The measurement counts even when no listener could be registered.
	cancel, err := subscription.Listen(list, listener)
	if list.Matches() {
		t.enterLocked(d.Name)
	}
	return cancel, err
}

func (t *BreakpointTracker) enter(name string, generation uint64) {
	t.mu.Lock()
	if generation != t.generation || !t.enterLocked(name) {
		t.mu.Unlock()
		return
	}
	state := t.state
	t.mu.Unlock()

	if t.onChange != nil {
		t.onChange(state)
	}
}

// enterLocked records a match for name and reports whether the state changed.
func (t *BreakpointTracker) enterLocked(name string) bool {
	next := State{Active: name, Measured: true}
	if next == t.state {
		return false
	}
	t.state = next
	return true
}
