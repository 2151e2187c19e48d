// Package provider composes the breakpoint and orientation trackers into the
// snapshot handed to consumers.
package provider

import (
	"fmt"
	"sync"

	"go.trai.ch/responsive/internal/core/domain"
	"go.trai.ch/responsive/internal/core/ports"
	"go.trai.ch/responsive/internal/engine/tracker"
)

// Provider owns the trackers of one configuration and publishes a new
// snapshot whenever the responsive state changes.
type Provider struct {
	matcher ports.MediaMatcher
	logger  ports.Logger
	sink    ports.DebugSink

	mu          sync.Mutex
	cfg         domain.Config
	fingerprint uint64
	descriptors *domain.Descriptors
	breakpoints *tracker.BreakpointTracker
	orientation *tracker.OrientationTracker
	assembler   Assembler
	snapshot    *domain.Snapshot

	// notifyMu orders deliveries so observers never see an older snapshot
	// after a newer one.
	notifyMu  sync.Mutex
	observers map[uint64]func(*domain.Snapshot)
	nextID    uint64
}

// New creates a provider. matcher may be nil when no viewport is available;
// sink may be nil to disable debug recording.
func New(matcher ports.MediaMatcher, logger ports.Logger, sink ports.DebugSink) *Provider {
	return &Provider{
		matcher:   matcher,
		logger:    logger,
		sink:      sink,
		observers: make(map[uint64]func(*domain.Snapshot)),
	}
}

// Mount starts tracking with cfg. Empty fields of cfg take their defaults.
// Mounting an already mounted provider behaves like Reconfigure.
func (p *Provider) Mount(cfg domain.Config) *domain.Snapshot {
	return p.Reconfigure(cfg)
}

// Reconfigure replaces the configuration at runtime. When the breakpoints are
// unchanged by content the existing subscriptions are kept; otherwise every
// previous subscription is removed before the new ones are registered.
func (p *Provider) Reconfigure(cfg domain.Config) *domain.Snapshot {
	cfg = cfg.WithDefaults()

	p.mu.Lock()
	if fp := cfg.Fingerprint(); p.descriptors == nil || fp != p.fingerprint {
		p.descriptors = domain.BuildDescriptors(cfg.Breakpoints.Queries())
		p.fingerprint = fp
	}
	p.cfg = cfg

	if p.breakpoints == nil {
		p.breakpoints = tracker.NewBreakpointTracker(p.matcher, p.logger, cfg.InitialMediaType, p.onBreakpoint)
	} else {
		p.breakpoints.Guess(cfg.InitialMediaType)
	}
	p.breakpoints.Mount(p.descriptors)

	if p.orientation == nil {
		p.orientation = tracker.NewOrientationTracker(p.matcher, p.logger, cfg.DefaultOrientation, p.onOrientation)
	} else {
		p.orientation.Seed(cfg.DefaultOrientation)
	}
	p.orientation.Mount()

	return p.publishLocked()
}

// Unmount removes every subscription. The last snapshot stays readable.
func (p *Provider) Unmount() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.breakpoints != nil {
		p.breakpoints.Unmount()
	}
	if p.orientation != nil {
		p.orientation.Unmount()
	}
}

// Snapshot returns the current snapshot, or nil before Mount.
func (p *Provider) Snapshot() *domain.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot
}

// Descriptors returns the descriptor list of the current configuration.
func (p *Provider) Descriptors() *domain.Descriptors {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.descriptors
}

// Handle returns a read-only handle for consumers.
func (p *Provider) Handle() *Handle {
	return &Handle{p: p}
}

func (p *Provider) onBreakpoint(tracker.State) {
	p.refresh()
}

func (p *Provider) onOrientation(domain.Orientation) {
	p.refresh()
}

func (p *Provider) refresh() {
	p.mu.Lock()
	p.publishLocked()
}

// publishLocked assembles the snapshot and, when it changed, delivers it to the
// sink and the observers. It is called with p.mu held and releases it.
func (p *Provider) publishLocked() *domain.Snapshot {
	snap := p.assembler.Assemble(
		p.descriptors,
		p.breakpoints.State(),
		p.orientation.Orientation(),
		p.cfg.MobileBreakpoint,
	)
	if snap == p.snapshot {
		p.mu.Unlock()
		return snap
	}
	p.snapshot = snap

	p.notifyMu.Lock()
	p.mu.Unlock()
	defer p.notifyMu.Unlock()

	p.record(snap)
	for _, fn := range p.observers {
		p.deliver(fn, snap)
	}
	return snap
}

func (p *Provider) record(snap *domain.Snapshot) {
	if p.sink == nil {
		return
	}
	defer p.recoverCallback("debug sink")
	p.sink.Record(snap, snap.MediaType())
}

func (p *Provider) deliver(fn func(*domain.Snapshot), snap *domain.Snapshot) {
	defer p.recoverCallback("observer")
	fn(snap)
}

func (p *Provider) recoverCallback(kind string) {
	if r := recover(); r != nil {
		p.logger.Warn(fmt.Sprintf("%s panicked: %v", kind, r))
	}
}

// watch registers fn and hands it the current snapshot, if any, before any
// later publish can reach it.
func (p *Provider) watch(fn func(*domain.Snapshot)) func() {
	p.mu.Lock()
	current := p.snapshot
	p.notifyMu.Lock()
	p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.observers[id] = fn
	if current != nil {
		p.deliver(fn, current)
	}
	p.notifyMu.Unlock()

	return func() {
		p.notifyMu.Lock()
		defer p.notifyMu.Unlock()
		delete(p.observers, id)
	}
}
