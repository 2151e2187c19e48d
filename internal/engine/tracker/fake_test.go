package tracker_test

import (
	"slices"

	"go.trai.ch/responsive/internal/adapters/viewport"
	"go.trai.ch/responsive/internal/core/ports"
)

// fakeList is a media query list whose match state is driven by the test.
type fakeList struct {
	media     string
	matches   bool
	listeners []*ports.Listener
	added     int
	removed   int
}

func (l *fakeList) Media() string { return l.media }
func (l *fakeList) Matches() bool { return l.matches }

func (l *fakeList) AddEventListener(_ string, lis *ports.Listener) error {
	l.listeners = append(l.listeners, lis)
	l.added++
	return nil
}

func (l *fakeList) RemoveEventListener(_ string, lis *ports.Listener) error {
	l.listeners = slices.DeleteFunc(l.listeners, func(o *ports.Listener) bool { return o == lis })
	l.removed++
	return nil
}

func (l *fakeList) set(matches bool) {
	if l.matches == matches {
		return
	}
	l.matches = matches
	for _, lis := range slices.Clone(l.listeners) {
		lis.Notify(ports.MediaQueryEvent{Media: l.media, Matches: matches})
	}
}

// fakeMatcher hands out one fakeList per query.
type fakeMatcher struct {
	lists map[string]*fakeList
	order []string
}

func newFakeMatcher() *fakeMatcher {
	return &fakeMatcher{lists: make(map[string]*fakeList)}
}

func (m *fakeMatcher) MatchMedia(query string) (ports.MediaQueryList, error) {
	return m.list(query), nil
}

func (m *fakeMatcher) list(query string) *fakeList {
	l, ok := m.lists[query]
	if !ok {
		l = &fakeList{media: query}
		m.lists[query] = l
		m.order = append(m.order, query)
	}
	return l
}

// activate makes exactly the given query match, leaving ranges first.
func (m *fakeMatcher) activate(query string) {
	for _, q := range m.order {
		if q != query {
			m.lists[q].set(false)
		}
	}
	m.list(query).set(true)
}

func (m *fakeMatcher) live() int {
	n := 0
	for _, l := range m.lists {
		n += len(l.listeners)
	}
	return n
}

// resizingMatcher resizes its viewport right before the list for query gains
// its first listener, as a concurrent resize would.
type resizingMatcher struct {
	viewport      *viewport.Viewport
	query         string
	width, height int
}

func (m *resizingMatcher) MatchMedia(query string) (ports.MediaQueryList, error) {
	list, err := m.viewport.MatchMedia(query)
	if err != nil || query != m.query {
		return list, err
	}
	return &resizingList{MediaQueryList: list, matcher: m}, nil
}

type resizingList struct {
	ports.MediaQueryList
	matcher *resizingMatcher
}

func (l *resizingList) AddEventListener(event string, lis *ports.Listener) error {
	l.matcher.viewport.Resize(l.matcher.width, l.matcher.height)
	return l.MediaQueryList.(ports.EventTarget).AddEventListener(event, lis)
}

func (l *resizingList) RemoveEventListener(event string, lis *ports.Listener) error {
	return l.MediaQueryList.(ports.EventTarget).RemoveEventListener(event, lis)
}
