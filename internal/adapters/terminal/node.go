package terminal

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/responsive/internal/core/ports"
)

// NodeID is the unique identifier for the terminal size source Graft node.
const NodeID graft.ID = "adapter.terminal"

func init() {
	graft.Register(graft.Node[ports.SizeSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SizeSource, error) {
			return New(os.Stdout), nil
		},
	})
}
