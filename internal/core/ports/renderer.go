package ports

import (
	"context"

	"go.trai.ch/responsive/internal/core/domain"
)

// Renderer presents the live responsive state, either as an interactive view
// or as plain lines.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start begins the renderer lifecycle. Asynchronous renderers may launch
	// background goroutines.
	Start(ctx context.Context) error
	// Stop signals the renderer to shut down and flush pending output.
	Stop() error
	// Wait blocks until the renderer has terminated.
	Wait() error

	// OnConfigure reports the breakpoint names of a new configuration in
	// ascending order.
	OnConfigure(names []string)
	// OnSnapshot reports a newly published snapshot. It must not block.
	OnSnapshot(snapshot *domain.Snapshot)
}
