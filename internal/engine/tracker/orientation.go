package tracker

import (
	"sync"

	"go.trai.ch/responsive/internal/core/domain"
	"go.trai.ch/responsive/internal/core/ports"
	"go.trai.ch/responsive/internal/engine/subscription"
)

// LandscapeQuery matches viewports at least as wide as they are tall.
const LandscapeQuery = "(orientation: landscape)"

// OrientationTracker follows the viewport orientation.
type OrientationTracker struct {
	matcher  ports.MediaMatcher
	logger   ports.Logger
	onChange func(domain.Orientation)

	mu          sync.Mutex
	orientation domain.Orientation
	measured    bool
	cancel      func()
}

// NewOrientationTracker creates a tracker seeded with fallback, which is
// reported until the orientation is measured. fallback may be unset.
func NewOrientationTracker(
	matcher ports.MediaMatcher,
	logger ports.Logger,
	fallback domain.Orientation,
	onChange func(domain.Orientation),
) *OrientationTracker {
	return &OrientationTracker{
		matcher:     matcher,
		logger:      logger,
		onChange:    onChange,
		orientation: fallback,
	}
}

// Orientation returns the current orientation.
func (t *OrientationTracker) Orientation() domain.Orientation {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.orientation
}

// Seed replaces the fallback orientation. It has no effect once the
// orientation was measured.
func (t *OrientationTracker) Seed(o domain.Orientation) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.measured {
		t.orientation = o
	}
}

// Mount measures the orientation and subscribes to its changes.
// Without a viewport the seeded orientation is kept.
func (t *OrientationTracker) Mount() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		return
	}
	if t.matcher == nil {
		t.logger.Warn(domain.ErrViewportUnavailable.Error())
		return
	}

	list, err := t.matcher.MatchMedia(LandscapeQuery)
	if err != nil {
		t.logger.Warn(err.Error())
		return
	}
	cancel, err := subscription.Listen(list, ports.NewListener(func(ev ports.MediaQueryEvent) {
		t.update(orientationFor(ev.Matches))
	}))
	t.orientation = orientationFor(list.Matches())
	t.measured = true
	if err != nil {
		t.logger.Warn(err.Error())
		return
	}
	t.cancel = cancel
}

// Unmount removes the subscription.
func (t *OrientationTracker) Unmount() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

func (t *OrientationTracker) update(next domain.Orientation) {
	t.mu.Lock()
	if t.cancel == nil || next == t.orientation {
		t.mu.Unlock()
		return
	}
	t.orientation = next
	t.mu.Unlock()

	if t.onChange != nil {
		t.onChange(next)
	}
}

func orientationFor(landscape bool) domain.Orientation {
	if landscape {
		return domain.OrientationLandscape
	}
	return domain.OrientationPortrait
}
