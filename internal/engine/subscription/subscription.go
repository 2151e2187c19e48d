// Package subscription adapts the listener shapes a media query list may offer
// to the single ports.Subscription capability used by the trackers.
package subscription

import (
	"sync"

	"go.trai.ch/responsive/internal/core/domain"
	"go.trai.ch/responsive/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Subscription = (*modern)(nil)
	_ ports.Subscription = (*legacy)(nil)
)

// Select returns the subscription backing for list.
// Lists offering the modern shape get a backing that falls back to the legacy
// shape when the modern calls fail; lists offering only the legacy shape get
// the legacy backing. A list offering neither returns ErrSubscriptionUnavailable.
func Select(list ports.MediaQueryList) (ports.Subscription, error) {
	old, hasLegacy := list.(ports.LegacyTarget)
	if target, ok := list.(ports.EventTarget); ok {
		m := &modern{target: target}
		if hasLegacy {
			m.fallback = &legacy{target: old}
		}
		return m, nil
	}
	if hasLegacy {
		return &legacy{target: old}, nil
	}
	return nil, zerr.With(domain.ErrSubscriptionUnavailable, "media", list.Media())
}

// Listen selects the backing for list and registers l on it.
func Listen(list ports.MediaQueryList, l *ports.Listener) (func(), error) {
	sub, err := Select(list)
	if err != nil {
		return nil, err
	}
	return sub.Listen(l)
}

type modern struct {
	target   ports.EventTarget
	fallback *legacy
}

func (m *modern) Listen(l *ports.Listener) (func(), error) {
	if err := m.target.AddEventListener(ports.ChangeEvent, l); err != nil {
		if m.fallback == nil {
			return nil, zerr.Wrap(err, domain.ErrSubscriptionUnavailable.Error())
		}
		return m.fallback.Listen(l)
	}
	return onlyOnce(func() {
		if err := m.target.RemoveEventListener(ports.ChangeEvent, l); err != nil && m.fallback != nil {
			m.fallback.target.RemoveListener(l)
		}
	}), nil
}

type legacy struct {
	target ports.LegacyTarget
}

func (s *legacy) Listen(l *ports.Listener) (func(), error) {
	s.target.AddListener(l)
	return onlyOnce(func() {
		s.target.RemoveListener(l)
	}), nil
}

// onlyOnce makes repeated cancellation harmless.
func onlyOnce(fn func()) func() {
	var once sync.Once
	return func() { once.Do(fn) }
}
