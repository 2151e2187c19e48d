package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/responsive/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/responsive/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/responsive/internal/adapters/telemetry"          //nolint:depguard // Wired in app layer
	"go.trai.ch/responsive/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/responsive/internal/adapters/terminal"           //nolint:depguard // Wired in app layer
	"go.trai.ch/responsive/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds the resolved application graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.WatcherNodeID,
			terminal.NodeID,
			logger.NodeID,
			telemetry.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    app,
				Logger: log,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	watcher, err := graft.Dep[ports.ConfigWatcher](ctx)
	if err != nil {
		return nil, err
	}

	sizes, err := graft.Dep[ports.SizeSource](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	sink, err := graft.Dep[ports.DebugSink](ctx)
	if err != nil {
		return nil, err
	}

	traces, err := graft.Dep[progrock.Factory](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, watcher, sizes, log, sink, traces), nil
}
