package ports

import (
	"context"

	"go.trai.ch/responsive/internal/core/domain"
)

// ConfigLoader defines the interface for loading the responsive configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads and validates the configuration file at path.
	// An empty path yields the default configuration.
	Load(path string) (domain.Config, error)
}

// ConfigWatcher notifies about changes to a configuration file.
type ConfigWatcher interface {
	// Watch blocks until ctx is done, calling onChange after the file at path
	// was written, created or replaced.
	Watch(ctx context.Context, path string, onChange func()) error
}
