package terminal_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/responsive/internal/adapters/terminal"
	"go.trai.ch/responsive/internal/core/domain"
)

type fakeTTY struct {
	mu            sync.Mutex
	width, height int
	err           error
}

func (f *fakeTTY) size(int) (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.width, f.height, f.err
}

func (f *fakeTTY) resize(w, h int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.width, f.height = w, h
}

func TestSizeSource_Size(t *testing.T) {
	tty := &fakeTTY{width: 120, height: 40}
	src := terminal.NewWithSizeFunc(tty.size, time.Second)

	w, h, err := src.Size()
	require.NoError(t, err)
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)
}

func TestSizeSource_NotATerminal(t *testing.T) {
	tty := &fakeTTY{err: errors.New("inappropriate ioctl for device")}
	src := terminal.NewWithSizeFunc(tty.size, time.Second)

	_, _, err := src.Size()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrViewportUnavailable.Error())
	assert.ErrorContains(t, err, "inappropriate ioctl")
}

func TestSizeSource_ZeroSize(t *testing.T) {
	src := terminal.NewWithSizeFunc((&fakeTTY{}).size, time.Second)

	_, _, err := src.Size()
	assert.ErrorContains(t, err, domain.ErrViewportUnavailable.Error())
}

func TestSizeSource_Watch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		tty := &fakeTTY{width: 80, height: 24}
		src := terminal.NewWithSizeFunc(tty.size, 10*time.Millisecond)

		var mu sync.Mutex
		var sizes [][2]int
		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan error, 1)
		go func() {
			done <- src.Watch(ctx, func(w, h int) {
				mu.Lock()
				sizes = append(sizes, [2]int{w, h})
				mu.Unlock()
			})
		}()

		time.Sleep(25 * time.Millisecond)
		tty.resize(100, 30)
		time.Sleep(25 * time.Millisecond)
		tty.resize(100, 30)
		time.Sleep(25 * time.Millisecond)
		tty.resize(60, 30)
		time.Sleep(25 * time.Millisecond)
		synctest.Wait()

		cancel()
		require.NoError(t, <-done)

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, [][2]int{{80, 24}, {100, 30}, {60, 30}}, sizes)
	})
}

func TestSizeSource_WatchUnavailable(t *testing.T) {
	tty := &fakeTTY{err: errors.New("no tty")}
	src := terminal.NewWithSizeFunc(tty.size, time.Millisecond)

	called := false
	err := src.Watch(t.Context(), func(int, int) { called = true })
	assert.ErrorContains(t, err, domain.ErrViewportUnavailable.Error())
	assert.False(t, called)
}
