package ports

import "go.trai.ch/responsive/internal/core/domain"

// DebugSink receives every published snapshot together with the active
// breakpoint name. Calls are fire-and-forget: a sink must not block and has no
// way to influence the responsive state.
//
//go:generate go run go.uber.org/mock/mockgen -source=debug_sink.go -destination=mocks/mock_debug_sink.go -package=mocks
type DebugSink interface {
	Record(snapshot *domain.Snapshot, mediaType string)
}
