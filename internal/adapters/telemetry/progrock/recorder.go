// Package progrock records snapshot transitions on a progrock tape. Every
// stay in a breakpoint becomes a vertex; the snapshots published during the
// stay are written to its output as JSON lines.
package progrock

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/responsive/internal/core/domain"
	"go.trai.ch/responsive/internal/core/ports"
)

var _ ports.DebugSink = (*Recorder)(nil)

// Recorder implements ports.DebugSink using a progrock recorder.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu        sync.Mutex
	seq       int
	mediaType string
	vertex    *progrock.VertexRecorder
	closed    bool
}

// NewRecorder creates a Recorder writing its status updates to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record completes the vertex of the previous breakpoint when the breakpoint
// changed and appends the snapshot to the current one.
func (r *Recorder) Record(snapshot *domain.Snapshot, mediaType string) {
	line, err := json.Marshal(snapshot)
	if err != nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	if r.vertex == nil || mediaType != r.mediaType {
		if r.vertex != nil {
			r.vertex.Done(nil)
		}
		r.seq++
		name := fmt.Sprintf("breakpoint %s", mediaType)
		r.vertex = r.rec.Vertex(digest.FromString(fmt.Sprintf("%d:%s", r.seq, name)), name)
		r.mediaType = mediaType
	}
	_, _ = r.vertex.Stdout().Write(append(line, '\n'))
}

// Close completes the open vertex and closes the recording session.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	if r.vertex != nil {
		r.vertex.Done(nil)
	}
	return r.w.Close()
}
