// Package telemetry provides the debug sinks that report every published
// snapshot.
package telemetry

import (
	"fmt"

	"go.trai.ch/responsive/internal/core/domain"
	"go.trai.ch/responsive/internal/core/ports"
)

var (
	_ ports.DebugSink = (*LogSink)(nil)
	_ ports.DebugSink = NoOp{}
	_ ports.DebugSink = Multi(nil)
)

// LogSink writes every snapshot as a debug log line.
type LogSink struct {
	logger ports.Logger
}

// NewLogSink creates a sink logging through log.
func NewLogSink(log ports.Logger) *LogSink {
	return &LogSink{logger: log}
}

// Record logs the active breakpoint and the measured state.
func (s *LogSink) Record(snapshot *domain.Snapshot, mediaType string) {
	s.logger.Debug(Describe(snapshot, mediaType))
}

// Describe renders a one-line summary of a snapshot.
func Describe(snapshot *domain.Snapshot, mediaType string) string {
	orientation := snapshot.Orientation().String()
	if orientation == "" {
		orientation = "unknown"
	}
	return fmt.Sprintf("media type %s (orientation %s, calculated %t, mobile %t)",
		mediaType, orientation, snapshot.IsCalculated(), snapshot.IsMobile())
}

// NoOp discards every snapshot.
type NoOp struct{}

// Record does nothing.
func (NoOp) Record(*domain.Snapshot, string) {}

// Multi fans a snapshot out to several sinks in order.
type Multi []ports.DebugSink

// Record forwards to every sink.
func (m Multi) Record(snapshot *domain.Snapshot, mediaType string) {
	for _, s := range m {
		s.Record(snapshot, mediaType)
	}
}

// Combine returns a sink recording to every given sink. Without sinks the
// result is NoOp.
func Combine(sinks ...ports.DebugSink) ports.DebugSink {
	switch len(sinks) {
	case 0:
		return NoOp{}
	case 1:
		return sinks[0]
	default:
		return Multi(sinks)
	}
}
