// Package viewport implements an in-process media query facility whose size is
// driven by the host, typically the terminal the program runs in.
package viewport

import (
	"slices"
	"sync"

	"go.trai.ch/responsive/internal/core/domain"
	"go.trai.ch/responsive/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Viewport = (*Viewport)(nil)

// Option configures a Viewport.
type Option func(*Viewport)

// WithLegacyLists makes MatchMedia return lists offering only the legacy
// AddListener/RemoveListener shape.
func WithLegacyLists() Option {
	return func(v *Viewport) { v.legacy = true }
}

// Unavailable makes MatchMedia fail, as on hosts without a query facility.
func Unavailable() Option {
	return func(v *Viewport) { v.unavailable = true }
}

// Viewport evaluates media queries against a width and height in cells.
type Viewport struct {
	legacy      bool
	unavailable bool

	mu     sync.Mutex
	width  int
	height int
	// live holds the lists that have at least one listener, in the order they
	// gained their first one.
	live []*mediaList

	// deliverMu keeps the deliveries of concurrent resizes in order.
	deliverMu sync.Mutex
}

// New creates a viewport of the given size.
func New(width, height int, opts ...Option) *Viewport {
	v := &Viewport{
		width:  width,
		height: height,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// MatchMedia parses query and returns a live list for it.
func (v *Viewport) MatchMedia(query string) (ports.MediaQueryList, error) {
	if v.unavailable {
		return nil, zerr.With(domain.ErrViewportUnavailable, "media", query)
	}

	q, err := ParseQuery(query)
	if err != nil {
		return nil, err
	}

	l := &mediaList{viewport: v, query: q}
	if v.legacy {
		return l, nil
	}
	return &eventList{mediaList: l}, nil
}

// Size returns the current size.
func (v *Viewport) Size() (width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width, v.height
}

// Resize sets the size and notifies the listeners of every list whose match
// state flipped. Listeners run after the viewport lock is released, in the
// order the lists were subscribed to. Listeners must not call Resize.
func (v *Viewport) Resize(width, height int) {
	type delivery struct {
		listeners []*ports.Listener
		event     ports.MediaQueryEvent
	}

	v.mu.Lock()
	if width == v.width && height == v.height {
		v.mu.Unlock()
		return
	}
	v.width, v.height = width, height

	var pending []delivery
	for _, l := range v.live {
		matches := l.query.Eval(width, height)
		if matches == l.matched {
			continue
		}
		l.matched = matches
		pending = append(pending, delivery{
			listeners: slices.Clone(l.listeners),
			event:     ports.MediaQueryEvent{Media: l.query.Media(), Matches: matches},
		})
	}
	v.deliverMu.Lock()
	v.mu.Unlock()
	defer v.deliverMu.Unlock()

	for _, d := range pending {
		for _, lis := range d.listeners {
			lis.Notify(d.event)
		}
	}
}

// Listening returns the number of registered listeners across all lists.
func (v *Viewport) Listening() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	n := 0
	for _, l := range v.live {
		n += len(l.listeners)
	}
	return n
}
