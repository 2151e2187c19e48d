//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

// notifyResize delivers SIGWINCH as a resize signal.
func notifyResize() (<-chan os.Signal, func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	return ch, func() { signal.Stop(ch) }
}
