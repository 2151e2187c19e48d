package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/responsive/internal/adapters/logger"
	"go.trai.ch/responsive/internal/core/ports"
)

// NodeID is the unique identifier for the debug sink Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.DebugSink]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DebugSink, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLogSink(log), nil
		},
	})
}
