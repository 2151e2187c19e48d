package ports

import "context"

// SizeSource measures the host display.
//
//go:generate go run go.uber.org/mock/mockgen -source=size_source.go -destination=mocks/mock_size_source.go -package=mocks
type SizeSource interface {
	// Size returns the current size in cells.
	Size() (width, height int, err error)
	// Watch calls fn with the new size after every resize until ctx is done.
	Watch(ctx context.Context, fn func(width, height int)) error
}
