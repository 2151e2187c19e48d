package provider_test

import (
	"slices"
	"sync"

	"go.trai.ch/responsive/internal/core/ports"
)

// fakeList is a media query list whose match state is driven by the test.
type fakeList struct {
	mu        sync.Mutex
	media     string
	matches   bool
	listeners []*ports.Listener
	added     int
	removed   int
}

func (l *fakeList) Media() string { return l.media }

func (l *fakeList) Matches() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.matches
}

// The fake only offers the legacy shape, so the provider goes through the fallback.
func (l *fakeList) AddListener(lis *ports.Listener) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, lis)
	l.added++
}

func (l *fakeList) RemoveListener(lis *ports.Listener) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = slices.DeleteFunc(l.listeners, func(o *ports.Listener) bool { return o == lis })
	l.removed++
}

func (l *fakeList) set(matches bool) {
	l.mu.Lock()
	if l.matches == matches {
		l.mu.Unlock()
		return
	}
	l.matches = matches
	listeners := slices.Clone(l.listeners)
	l.mu.Unlock()

	for _, lis := range listeners {
		lis.Notify(ports.MediaQueryEvent{Media: l.media, Matches: matches})
	}
}

type fakeMatcher struct {
	mu    sync.Mutex
	lists map[string]*fakeList
}

func newFakeMatcher() *fakeMatcher {
	return &fakeMatcher{lists: make(map[string]*fakeList)}
}

func (m *fakeMatcher) MatchMedia(query string) (ports.MediaQueryList, error) {
	return m.list(query), nil
}

func (m *fakeMatcher) list(query string) *fakeList {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lists[query]
	if !ok {
		l = &fakeList{media: query}
		m.lists[query] = l
	}
	return l
}

// activate makes query the only matching breakpoint query.
func (m *fakeMatcher) activate(query string, others ...string) {
	for _, q := range others {
		if q != query {
			m.list(q).set(false)
		}
	}
	m.list(query).set(true)
}

func (m *fakeMatcher) live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.lists {
		l.mu.Lock()
		n += len(l.listeners)
		l.mu.Unlock()
	}
	return n
}
