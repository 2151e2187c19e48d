// Package app implements the application layer for responsive.
package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/responsive/internal/adapters/linear"              //nolint:depguard // Wired in app layer
	"go.trai.ch/responsive/internal/adapters/telemetry"           //nolint:depguard // Wired in app layer
	"go.trai.ch/responsive/internal/adapters/telemetry/progrock"  //nolint:depguard // Wired in app layer
	"go.trai.ch/responsive/internal/adapters/tui"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/responsive/internal/adapters/viewport"            //nolint:depguard // Wired in app layer
	"go.trai.ch/responsive/internal/core/domain"
	"go.trai.ch/responsive/internal/core/ports"
	"go.trai.ch/responsive/internal/engine/provider"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	configWatcher ports.ConfigWatcher
	sizes         ports.SizeSource
	logger        ports.Logger
	sink          ports.DebugSink
	traces        progrock.Factory
	teaOptions    []tea.ProgramOption
	plainOutput   func() ports.Renderer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	watcher ports.ConfigWatcher,
	sizes ports.SizeSource,
	log ports.Logger,
	sink ports.DebugSink,
	traces progrock.Factory,
) *App {
	return &App{
		configLoader:  loader,
		configWatcher: watcher,
		sizes:         sizes,
		logger:        log,
		sink:          sink,
		traces:        traces,
		plainOutput: func() ports.Renderer {
			return linear.NewRenderer(nil, nil)
		},
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithPlainOutput replaces the renderer used for plain output.
func (a *App) WithPlainOutput(fn func() ports.Renderer) *App {
	a.plainOutput = fn
	return a
}

// Queries returns the breakpoint descriptors of the configuration at path.
func (a *App) Queries(path string) (*domain.Descriptors, error) {
	cfg, err := a.load(path)
	if err != nil {
		return nil, err
	}
	return domain.BuildDescriptors(cfg.Breakpoints.Queries()), nil
}

// Match evaluates the configuration at path against a viewport of the given
// size and returns the resulting snapshot.
func (a *App) Match(path string, width, height int) (*domain.Snapshot, error) {
	if width < 0 || height < 0 {
		err := zerr.New("viewport size must not be negative")
		err = zerr.With(err, "width", width)
		return nil, zerr.With(err, "height", height)
	}

	cfg, err := a.load(path)
	if err != nil {
		return nil, err
	}

	p := provider.New(viewport.New(width, height), a.logger, nil)
	snap := p.Mount(cfg)
	p.Unmount()
	return snap, nil
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	// Plain prints one line per snapshot instead of the interactive view.
	Plain bool
	// Debug reports every snapshot through the logger. It implies Plain.
	Debug bool
	// TraceFile, when set, records every snapshot on a progrock tape in this file.
	TraceFile string
}

// Watch tracks the terminal until ctx is done or the interactive view is
// closed. The configuration file at path is reloaded whenever it changes.
//
//nolint:cyclop // orchestration function
func (a *App) Watch(ctx context.Context, path string, opts WatchOptions) (err error) {
	cfg, err := a.load(path)
	if err != nil {
		return err
	}

	// 1. Measure the terminal
	vp, measured := a.measure()

	// 2. Collect debug sinks
	var sinks []ports.DebugSink
	if opts.Debug {
		if l, ok := a.logger.(interface{ SetDebug(enable bool) }); ok {
			l.SetDebug(true)
		}
		sinks = append(sinks, a.sink)
	}
	if opts.TraceFile != "" {
		rec, closeTrace, errTrace := a.traces(opts.TraceFile)
		if errTrace != nil {
			return zerr.With(zerr.Wrap(errTrace, "failed to open trace file"), "path", opts.TraceFile)
		}
		defer func() {
			if errClose := closeTrace(); errClose != nil && err == nil {
				err = zerr.Wrap(errClose, "failed to close trace file")
			}
		}()
		sinks = append(sinks, rec)
	}
	sink := telemetry.Combine(sinks...)

	// 3. Initialize Renderer
	var renderer ports.Renderer
	if opts.Plain || opts.Debug {
		renderer = a.plainOutput()
	} else {
		renderer = tui.NewRenderer(tui.NewModel(vp), a.teaOptions...)
	}
	if err := renderer.Start(ctx); err != nil {
		return zerr.Wrap(err, "failed to start renderer")
	}

	// 4. Mount the provider
	p := provider.New(vp, a.logger, sink)
	renderer.OnConfigure(cfg.Breakpoints.Names())
	stopWatching := p.Handle().Watch(renderer.OnSnapshot)
	p.Mount(cfg)
	defer func() {
		stopWatching()
		p.Unmount()
	}()

	// 5. Run renderer, size source and config watcher concurrently
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// Renderer Routine
	g.Go(func() error {
		// Closing the view ends the session.
		defer cancel()
		return renderer.Wait()
	})
	g.Go(func() error {
		<-ctx.Done()
		return renderer.Stop()
	})

	// Size Routine
	if measured {
		g.Go(func() error {
			return a.sizes.Watch(ctx, vp.Resize)
		})
	}

	// Config Routine
	if path != "" {
		g.Go(func() error {
			return a.configWatcher.Watch(ctx, path, func() {
				next, errLoad := a.load(path)
				if errLoad != nil {
					a.logger.Warn(fmt.Sprintf("keeping previous configuration: %v", errLoad))
					return
				}
				renderer.OnConfigure(next.Breakpoints.Names())
				p.Reconfigure(next)
				a.logger.Debug("configuration reloaded")
			})
		})
	}

	return g.Wait()
}

// measure creates a viewport of the terminal's current size. When the
// terminal cannot be measured the viewport offers no query facility and the
// provider keeps its configured guess.
func (a *App) measure() (*viewport.Viewport, bool) {
	width, height, err := a.sizes.Size()
	if err != nil {
		a.logger.Warn(fmt.Sprintf("cannot measure the terminal, using the configured guess: %v", err))
		return viewport.New(0, 0, viewport.Unavailable()), false
	}
	return viewport.New(width, height), true
}

func (a *App) load(path string) (domain.Config, error) {
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg.WithDefaults(), nil
}
