package tracker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/responsive/internal/adapters/viewport"
	"go.trai.ch/responsive/internal/core/domain"
	"go.trai.ch/responsive/internal/core/ports"
	"go.trai.ch/responsive/internal/core/ports/mocks"
	"go.trai.ch/responsive/internal/engine/tracker"
	"go.uber.org/mock/gomock"
)

func descriptors(t *testing.T, bps ...domain.Breakpoint) *domain.Descriptors {
	t.Helper()
	set, err := domain.NewWidthSet(bps...)
	require.NoError(t, err)
	return domain.BuildDescriptors(set.Queries())
}

func threeTiers(t *testing.T) *domain.Descriptors {
	t.Helper()
	return descriptors(t,
		domain.Breakpoint{Name: "xs", MinWidth: 0},
		domain.Breakpoint{Name: "sm", MinWidth: 576},
		domain.Breakpoint{Name: "md", MinWidth: 768},
	)
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return log
}

func TestBreakpointTracker_InitialGuessUntilMeasured(t *testing.T) {
	m := newFakeMatcher()
	ds := threeTiers(t)

	tr := tracker.NewBreakpointTracker(m, quietLogger(t), "xs", nil)
	assert.Equal(t, tracker.State{Active: "xs", Measured: false}, tr.State())

	// Nothing matches yet: the guess stays and nothing is measured.
	tr.Mount(ds)
	assert.Equal(t, tracker.State{Active: "xs", Measured: false}, tr.State())
	assert.Equal(t, 3, m.live())
}

func TestBreakpointTracker_SynchronousMatchOnMount(t *testing.T) {
	m := newFakeMatcher()
	ds := threeTiers(t)
	sm, _ := ds.Lookup("sm")
	m.list(sm.Query).matches = true

	var changes []tracker.State
	tr := tracker.NewBreakpointTracker(m, quietLogger(t), "xs", func(s tracker.State) {
		changes = append(changes, s)
	})
	tr.Mount(ds)

	assert.Equal(t, tracker.State{Active: "sm", Measured: true}, tr.State())
	assert.Empty(t, changes, "mount reports through State, not onChange")
}

func TestBreakpointTracker_ReactsOnlyToEntering(t *testing.T) {
	m := newFakeMatcher()
	ds := threeTiers(t)

	var changes []tracker.State
	tr := tracker.NewBreakpointTracker(m, quietLogger(t), "xs", func(s tracker.State) {
		changes = append(changes, s)
	})
	tr.Mount(ds)

	md, _ := ds.Lookup("md")
	sm, _ := ds.Lookup("sm")

	m.activate(md.Query)
	assert.Equal(t, tracker.State{Active: "md", Measured: true}, tr.State())

	// Leaving md without entering anything is ignored.
	m.list(md.Query).set(false)
	assert.Equal(t, "md", tr.State().Active)

	m.activate(sm.Query)
	assert.Equal(t, tracker.State{Active: "sm", Measured: true}, tr.State())

	assert.Equal(t, []tracker.State{
		{Active: "md", Measured: true},
		{Active: "sm", Measured: true},
	}, changes)
}

func TestBreakpointTracker_MeasuredNeverReverts(t *testing.T) {
	m := newFakeMatcher()
	ds := threeTiers(t)
	tr := tracker.NewBreakpointTracker(m, quietLogger(t), "xs", nil)
	tr.Mount(ds)

	xs, _ := ds.Lookup("xs")
	m.activate(xs.Query)
	require.True(t, tr.State().Measured)

	// Remounting a new list keeps the measurement.
	tr.Mount(threeTiers(t))
	assert.True(t, tr.State().Measured)

	tr.Unmount()
	assert.True(t, tr.State().Measured)
}

func TestBreakpointTracker_ReplacingDescriptorsResubscribesOnce(t *testing.T) {
	m := newFakeMatcher()
	first := threeTiers(t)
	tr := tracker.NewBreakpointTracker(m, quietLogger(t), "xs", nil)
	tr.Mount(first)

	// Same identity: nothing happens.
	tr.Mount(first)
	for _, l := range m.lists {
		assert.Equal(t, 1, l.added)
		assert.Equal(t, 0, l.removed)
	}

	second := descriptors(t,
		domain.Breakpoint{Name: "narrow", MinWidth: 0},
		domain.Breakpoint{Name: "wide", MinWidth: 100},
	)
	tr.Mount(second)
	assert.Same(t, second, tr.Descriptors())

	for d := range first.All() {
		l := m.lists[d.Query]
		assert.Equal(t, 1, l.added, d.Name)
		assert.Equal(t, 1, l.removed, d.Name)
		assert.Empty(t, l.listeners, d.Name)
	}
	for d := range second.All() {
		l := m.lists[d.Query]
		assert.Equal(t, 1, l.added, d.Name)
		assert.Equal(t, 0, l.removed, d.Name)
	}
	assert.Equal(t, 2, m.live())

	tr.Unmount()
	tr.Unmount()
	assert.Equal(t, 0, m.live())
	for d := range second.All() {
		assert.Equal(t, 1, m.lists[d.Query].removed, d.Name)
	}
}

func TestBreakpointTracker_StaleEventsIgnored(t *testing.T) {
	m := newFakeMatcher()
	first := threeTiers(t)
	tr := tracker.NewBreakpointTracker(m, quietLogger(t), "xs", nil)
	tr.Mount(first)

	md, _ := first.Lookup("md")
	staleList := m.list(md.Query)
	stale := staleList.listeners[0]

	tr.Mount(descriptors(t, domain.Breakpoint{Name: "all", MinWidth: 0}))
	stale.Notify(ports.MediaQueryEvent{Media: md.Query, Matches: true})

	assert.Equal(t, "xs", tr.State().Active)
}

func TestBreakpointTracker_ViewportUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	matcher := mocks.NewMockMediaMatcher(ctrl)
	log := mocks.NewMockLogger(ctrl)

	matcher.EXPECT().MatchMedia(gomock.Any()).Return(nil, domain.ErrViewportUnavailable).Times(3)
	log.EXPECT().Warn(gomock.Any()).Times(3)

	tr := tracker.NewBreakpointTracker(matcher, log, "lg", nil)
	assert.NotPanics(t, func() { tr.Mount(threeTiers(t)) })
	assert.Equal(t, tracker.State{Active: "lg", Measured: false}, tr.State())
	assert.NotPanics(t, tr.Unmount)
}

func TestBreakpointTracker_NilMatcher(t *testing.T) {
	tr := tracker.NewBreakpointTracker(nil, quietLogger(t), "xs", nil)
	assert.NotPanics(t, func() { tr.Mount(threeTiers(t)) })
	assert.Equal(t, tracker.State{Active: "xs"}, tr.State())
}

func TestBreakpointTracker_NoSubscriptionShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	matcher := mocks.NewMockMediaMatcher(ctrl)
	list := mocks.NewMockMediaQueryList(ctrl)

	matcher.EXPECT().MatchMedia(gomock.Any()).Return(list, nil)
	list.EXPECT().Matches().Return(true)
	list.EXPECT().Media().Return("(min-width: 0px)").AnyTimes()

	tr := tracker.NewBreakpointTracker(matcher, quietLogger(t), "xs", nil)
	tr.Mount(descriptors(t, domain.Breakpoint{Name: "only", MinWidth: 0}))

	// The synchronous measurement still counts even though no listener could be registered.
	assert.Equal(t, tracker.State{Active: "only", Measured: true}, tr.State())
}

func TestBreakpointTracker_ResizeWhileSubscribing(t *testing.T) {
	vp := viewport.New(100, 24)
	md := "(min-width: 768px)"
	m := &resizingMatcher{viewport: vp, query: md, width: 800, height: 24}

	tr := tracker.NewBreakpointTracker(m, quietLogger(t), "xs", nil)
	tr.Mount(threeTiers(t))

	w, _ := vp.Size()
	require.Equal(t, 800, w)
	assert.Equal(t, tracker.State{Active: "md", Measured: true}, tr.State())
	assert.Equal(t, 3, vp.Listening())
}
