package terminal

import "time"

// NewWithSizeFunc creates a size source reading its size from fn.
func NewWithSizeFunc(fn func(fd int) (int, int, error), interval time.Duration) *SizeSource {
	return &SizeSource{interval: interval, getSize: fn}
}
