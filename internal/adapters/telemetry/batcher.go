package telemetry

import (
	"bytes"
	"io"
	"sync"
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultSizeLimit is the buffer size that triggers a flush.
	DefaultSizeLimit = 4096
	// DefaultTimeLimit is the longest time data stays buffered.
	DefaultTimeLimit = 50 * time.Millisecond
)

// errBatchWriterClosed is returned by Write after Close.
var errBatchWriterClosed = zerr.New("batch writer is closed")

// BatchWriter buffers writes to w until a size or time limit is reached.
// It is safe for concurrent use.
type BatchWriter struct {
	w         io.Writer
	sizeLimit int
	timeLimit time.Duration

	mu     sync.Mutex
	buffer bytes.Buffer
	err    error
	ticker *time.Ticker
	stopCh chan struct{}
	doneCh chan struct{}
	closed bool
}

// NewBatchWriter starts a writer flushing to w. Non-positive limits take
// their defaults. Call Close to stop the background flusher.
func NewBatchWriter(w io.Writer, sizeLimit int, timeLimit time.Duration) *BatchWriter {
	if sizeLimit <= 0 {
		sizeLimit = DefaultSizeLimit
	}
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}

	bw := &BatchWriter{
		w:         w,
		sizeLimit: sizeLimit,
		timeLimit: timeLimit,
		ticker:    time.NewTicker(timeLimit),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
	go bw.run()
	return bw
}

// Write buffers p, flushing once the size limit is reached.
func (bw *BatchWriter) Write(p []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.closed {
		return 0, errBatchWriterClosed
	}

	n, _ := bw.buffer.Write(p)
	if bw.buffer.Len() >= bw.sizeLimit {
		bw.flushLocked()
		bw.ticker.Reset(bw.timeLimit)
	}
	return n, nil
}

// Flush writes any buffered data.
func (bw *BatchWriter) Flush() {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	bw.flushLocked()
}

// Close stops the flusher, writes the remaining data and returns the first
// write error that occurred.
func (bw *BatchWriter) Close() error {
	bw.mu.Lock()
	if bw.closed {
		bw.mu.Unlock()
		return bw.err
	}
	bw.closed = true
	close(bw.stopCh)
	bw.mu.Unlock()

	<-bw.doneCh

	bw.mu.Lock()
	defer bw.mu.Unlock()
	bw.flushLocked()
	return bw.err
}

func (bw *BatchWriter) run() {
	defer close(bw.doneCh)
	for {
		select {
		case <-bw.ticker.C:
			bw.Flush()
		case <-bw.stopCh:
			bw.ticker.Stop()
			return
		}
	}
}

func (bw *BatchWriter) flushLocked() {
	if bw.buffer.Len() == 0 {
		return
	}
	if _, err := bw.w.Write(bw.buffer.Bytes()); err != nil && bw.err == nil {
		bw.err = zerr.Wrap(err, "failed to write trace")
	}
	bw.buffer.Reset()
}
