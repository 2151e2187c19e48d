package viewport

import (
	"slices"

	"go.trai.ch/responsive/internal/core/domain"
	"go.trai.ch/responsive/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.LegacyTarget = (*mediaList)(nil)
	_ ports.EventTarget  = (*eventList)(nil)
	_ ports.LegacyTarget = (*eventList)(nil)
)

// mediaList is a live query offering the legacy subscription shape.
type mediaList struct {
	viewport *Viewport
	query    *Query

	// Guarded by viewport.mu.
	listeners []*ports.Listener
	matched   bool
}

func (l *mediaList) Media() string { return l.query.Media() }

func (l *mediaList) Matches() bool {
	v := l.viewport
	v.mu.Lock()
	defer v.mu.Unlock()
	return l.query.Eval(v.width, v.height)
}

// AddListener registers lis. Registering the same listener twice has no effect.
func (l *mediaList) AddListener(lis *ports.Listener) {
	v := l.viewport
	v.mu.Lock()
	defer v.mu.Unlock()

	if lis == nil || slices.Contains(l.listeners, lis) {
		return
	}
	if len(l.listeners) == 0 {
		l.matched = l.query.Eval(v.width, v.height)
		v.live = append(v.live, l)
	}
	l.listeners = append(l.listeners, lis)
}

// RemoveListener unregisters lis. Unknown listeners are ignored.
func (l *mediaList) RemoveListener(lis *ports.Listener) {
	v := l.viewport
	v.mu.Lock()
	defer v.mu.Unlock()

	i := slices.Index(l.listeners, lis)
	if i < 0 {
		return
	}
	l.listeners = slices.Delete(l.listeners, i, i+1)
	if len(l.listeners) == 0 {
		v.live = slices.DeleteFunc(v.live, func(o *mediaList) bool { return o == l })
	}
}

// eventList adds the modern event target shape on top of the legacy one.
type eventList struct {
	*mediaList
}

func (l *eventList) AddEventListener(event string, lis *ports.Listener) error {
	if event != ports.ChangeEvent {
		return zerr.With(domain.ErrSubscriptionUnavailable, "event", event)
	}
	l.AddListener(lis)
	return nil
}

func (l *eventList) RemoveEventListener(event string, lis *ports.Listener) error {
	if event != ports.ChangeEvent {
		return zerr.With(domain.ErrSubscriptionUnavailable, "event", event)
	}
	l.RemoveListener(lis)
	return nil
}
