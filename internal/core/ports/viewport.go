// Package ports defines the core interfaces for the application.
package ports

//go:generate go run go.uber.org/mock/mockgen -source=viewport.go -destination=mocks/mock_viewport.go -package=mocks

// ChangeEvent is the event name used to subscribe to match-state changes.
const ChangeEvent = "change"

// MediaQueryEvent reports the new match state of a media query.
type MediaQueryEvent struct {
	Media   string
	Matches bool
}

// Listener receives media query change events.
// Listeners are compared by pointer, so the same *Listener must be passed to
// remove a subscription that it was registered with.
type Listener struct {
	fn func(MediaQueryEvent)
}

// NewListener wraps fn into a Listener.
func NewListener(fn func(MediaQueryEvent)) *Listener {
	return &Listener{fn: fn}
}

// Notify delivers an event to the listener.
func (l *Listener) Notify(ev MediaQueryEvent) {
	if l != nil && l.fn != nil {
		l.fn(ev)
	}
}

// MediaQueryList is a live media query evaluated against the viewport.
type MediaQueryList interface {
	// Media returns the query the list was created for.
	Media() string
	// Matches reports whether the viewport currently satisfies the query.
	Matches() bool
}

// EventTarget is the modern subscription shape of a MediaQueryList.
type EventTarget interface {
	AddEventListener(event string, l *Listener) error
	RemoveEventListener(event string, l *Listener) error
}

// LegacyTarget is the legacy subscription shape of a MediaQueryList.
type LegacyTarget interface {
	AddListener(l *Listener)
	RemoveListener(l *Listener)
}

// MediaMatcher creates live media query lists.
type MediaMatcher interface {
	// MatchMedia returns a list for the given query.
	// It returns an error if the query is invalid or no viewport is available.
	MatchMedia(query string) (MediaQueryList, error)
}

// Viewport is a media query facility whose size can be driven by the host.
type Viewport interface {
	MediaMatcher
	// Resize sets the viewport size and notifies every list whose match state changed.
	Resize(width, height int)
	// Size returns the current viewport size.
	Size() (width, height int)
}

// Subscription is the single capability the core uses to listen to a list,
// regardless of which shape the list offers.
type Subscription interface {
	// Listen registers l and returns a function removing it again.
	Listen(l *Listener) (cancel func(), err error)
}
