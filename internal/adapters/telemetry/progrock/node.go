package progrock

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the trace recorder factory Graft node.
const NodeID graft.ID = "adapter.telemetry.progrock"

// Factory opens a recorder writing its trace to a file.
type Factory func(path string) (*Recorder, func() error, error)

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Factory, error) {
			return OpenFile, nil
		},
	})
}

// OpenFile creates a recorder whose trace is written to the file at path.
// The returned function closes the recorder and the file.
func OpenFile(path string) (*Recorder, func() error, error) {
	f, err := os.Create(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, nil, err
	}
	rec := NewRecorder(NewTraceWriter(f))
	return rec, func() error {
		recErr := rec.Close()
		if err := f.Close(); err != nil && recErr == nil {
			return err
		}
		return recErr
	}, nil
}
