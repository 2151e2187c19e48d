package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/responsive/internal/adapters/telemetry"
)

var _ progrock.Writer = (*TraceWriter)(nil)

// TraceWriter renders progrock status updates as a plain text trace: one
// header per vertex followed by the lines logged to it.
type TraceWriter struct {
	out *telemetry.BatchWriter

	mu    sync.Mutex
	names map[string]string
	done  map[string]bool
}

// NewTraceWriter creates a writer appending the trace to w.
func NewTraceWriter(w io.Writer) *TraceWriter {
	return &TraceWriter{
		out:   telemetry.NewBatchWriter(w, 0, 0),
		names: make(map[string]string),
		done:  make(map[string]bool),
	}
}

// WriteStatus implements progrock.Writer.
func (t *TraceWriter) WriteStatus(update *progrock.StatusUpdate) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, v := range update.Vertexes {
		if _, seen := t.names[v.Id]; !seen {
			t.names[v.Id] = v.Name
			if _, err := fmt.Fprintf(t.out, "== %s\n", v.Name); err != nil {
				return err
			}
		}
		if v.Completed != nil && !t.done[v.Id] {
			t.done[v.Id] = true
			if _, err := fmt.Fprintf(t.out, "-- %s done\n", v.Name); err != nil {
				return err
			}
		}
	}
	for _, l := range update.Logs {
		if _, err := t.out.Write(l.Data); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes the trace.
func (t *TraceWriter) Close() error {
	return t.out.Close()
}
