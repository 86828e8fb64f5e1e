package testutil

import (
	"errors"
	"sync"
)

// ErrMockWrite is returned by FailingWriter once its budget is used up
var ErrMockWrite = errors.New("mock write failure")

// FailingWriter accepts Limit bytes and then fails every write
type FailingWriter struct {
	mu      sync.Mutex
	Limit   int
	written int
}

// Write implements io.Writer
func (w *FailingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.written+len(p) > w.Limit {
		n := w.Limit - w.written
		if n < 0 {
			n = 0
		}
		w.written += n
		return n, ErrMockWrite
	}
	w.written += len(p)
	return len(p), nil
}

// Written returns how many bytes were accepted
func (w *FailingWriter) Written() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written
}
