package provider

import "go.trai.ch/responsive/internal/core/domain"

// Handle gives consumers read-only access to a provider's snapshots.
type Handle struct {
	p *Provider
}

// Snapshot returns the current snapshot, or nil before the provider is mounted.
func (h *Handle) Snapshot() *domain.Snapshot {
	return h.p.Snapshot()
}

// Watch calls fn with the current snapshot, if any, and then with every new
// snapshot until the returned function is called. fn runs on the goroutine
// that caused the change and must not block or call back into the provider.
// fn never receives a snapshot older than one it already received.
func (h *Handle) Watch(fn func(*domain.Snapshot)) (cancel func()) {
	return h.p.watch(fn)
}
