// Package terminal measures the terminal the program runs in.
package terminal

import (
	"context"
	"os"
	"time"

	"go.trai.ch/responsive/internal/core/domain"
	"go.trai.ch/responsive/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// DefaultPollInterval is how often the size is sampled where no resize
// signal exists.
const DefaultPollInterval = 250 * time.Millisecond

var _ ports.SizeSource = (*SizeSource)(nil)

// SizeSource reports the size, in cells, of the terminal behind a file descriptor.
type SizeSource struct {
	fd       int
	interval time.Duration
	getSize  func(fd int) (width, height int, err error)
}

// New creates a size source for f, usually os.Stdout.
func New(f *os.File) *SizeSource {
	return &SizeSource{
		fd:       int(f.Fd()), //nolint:gosec // file descriptors fit in int
		interval: DefaultPollInterval,
		getSize:  term.GetSize,
	}
}

// WithPollInterval overrides the sampling interval.
func (s *SizeSource) WithPollInterval(d time.Duration) *SizeSource {
	s.interval = d
	return s
}

// Size returns the current terminal size.
func (s *SizeSource) Size() (width, height int, err error) {
	width, height, err = s.getSize(s.fd)
	if err != nil {
		return 0, 0, zerr.With(zerr.Wrap(err, domain.ErrViewportUnavailable.Error()), "fd", s.fd)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, zerr.With(zerr.With(domain.ErrViewportUnavailable, "width", width), "height", height)
	}
	return width, height, nil
}

// Watch calls fn with the terminal size every time it changes, until ctx is
// done. The first call reports the size at the time Watch starts.
func (s *SizeSource) Watch(ctx context.Context, fn func(width, height int)) error {
	w, h, err := s.Size()
	if err != nil {
		return err
	}
	fn(w, h)

	resized, stop := notifyResize()
	defer stop()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-resized:
		case <-ticker.C:
		}

		nw, nh, err := s.Size()
		if err != nil || (nw == w && nh == h) {
			continue
		}
		w, h = nw, nh
		fn(w, h)
	}
}
