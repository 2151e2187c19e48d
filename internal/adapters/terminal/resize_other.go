//go:build !unix

package terminal

import "os"

// notifyResize returns a channel that never fires; the size is polled instead.
func notifyResize() (<-chan os.Signal, func()) {
	return nil, func() {}
}
