// Package config loads the responsive configuration from YAML and watches it
// for changes.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/responsive/internal/core/domain"
	"go.trai.ch/responsive/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up by the CLI.
const DefaultFilename = "responsive.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader for YAML files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{logger: log}
}

// Load reads the configuration file at path. An empty path yields the
// default configuration.
func (l *Loader) Load(path string) (domain.Config, error) {
	if path == "" {
		l.logger.Debug("no configuration file given, using defaults")
		return domain.DefaultConfig(), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, zerr.With(domain.ErrConfigNotFound, "path", path)
		}
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (domain.Config, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		// Errors raised by the mapping decoders already carry their context.
		var zErr *zerr.Error
		if errors.As(err, &zErr) {
			return domain.Config{}, zErr
		}
		return domain.Config{}, zerr.Wrap(err, "failed to parse config file")
	}
	return file.toDomain()
}

func (f *File) toDomain() (domain.Config, error) {
	if len(f.Breakpoints) > 0 && len(f.MediaQueries) > 0 {
		return domain.Config{}, domain.ErrConflictingBreakpointSources
	}

	orientation, err := domain.ParseOrientation(f.DefaultOrientation)
	if err != nil {
		return domain.Config{}, err
	}

	cfg := domain.Config{
		InitialMediaType:   f.InitialMediaType,
		DefaultOrientation: orientation,
		MobileBreakpoint:   f.MobileBreakpoint,
	}

	switch {
	case len(f.Breakpoints) > 0:
		bps := make([]domain.Breakpoint, len(f.Breakpoints))
		for i, e := range f.Breakpoints {
			bps[i] = domain.Breakpoint{Name: e.Name, MinWidth: e.MinWidth}
		}
		set, err := domain.NewWidthSet(bps...)
		if err != nil {
			return domain.Config{}, err
		}
		cfg.Breakpoints = set
	case len(f.MediaQueries) > 0:
		queries := make([]domain.NamedQuery, len(f.MediaQueries))
		for i, e := range f.MediaQueries {
			queries[i] = domain.NamedQuery{Name: e.Name, Query: e.Query}
		}
		set, err := domain.NewQuerySet(queries...)
		if err != nil {
			return domain.Config{}, err
		}
		cfg.Breakpoints = set
	}

	return cfg.WithDefaults(), nil
}
