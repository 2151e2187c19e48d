// Package linear provides a line-based renderer for non-interactive terminals.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/responsive/internal/core/domain"
	"go.trai.ch/responsive/internal/core/ports"
	"go.trai.ch/responsive/internal/ui/output"
	"go.trai.ch/responsive/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer by printing one line per snapshot.
type Renderer struct {
	stdout *termenv.Output
	stderr *termenv.Output

	mu   sync.Mutex
	last *domain.Snapshot

	stopOnce sync.Once
	done     chan struct{}
}

// NewRenderer creates a new linear renderer. Nil writers mean os.Stdout and
// os.Stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: output.New(stdout),
		stderr: output.New(stderr),
		done:   make(chan struct{}),
	}
}

// Start is a no-op for the linear renderer (synchronous).
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop releases Wait. Output is written synchronously, so there is nothing
// to flush.
func (r *Renderer) Stop() error {
	r.stopOnce.Do(func() { close(r.done) })
	return nil
}

// Wait blocks until Stop is called.
func (r *Renderer) Wait() error {
	<-r.done
	return nil
}

// OnConfigure prints the tracked breakpoints.
func (r *Renderer) OnConfigure(names []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Tracking %d breakpoint(s): %s\n", len(names), strings.Join(names, ", "))
}

// OnSnapshot prints the snapshot. Consecutive identical snapshots are
// printed once.
func (r *Renderer) OnSnapshot(snapshot *domain.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if snapshot == r.last {
		return
	}
	r.last = snapshot

	symbol := r.stdout.String(style.Check).Foreground(r.stdout.Color(string(style.Green))).String()
	if !snapshot.IsCalculated() {
		symbol = r.stdout.String(style.Warning).Foreground(r.stdout.Color(string(style.Yellow))).String()
	}
	prefix := r.stdout.String(fmt.Sprintf("[%s]", snapshot.MediaType())).Bold().String()

	_, _ = fmt.Fprintf(r.stdout, "%s %s orientation=%s mobile=%t calculated=%t\n",
		symbol,
		prefix,
		snapshot.Orientation(),
		snapshot.IsMobile(),
		snapshot.IsCalculated(),
	)
}
