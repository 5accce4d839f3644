// Package utils holds small IO helpers shared by commands.
package utils

import (
	"bytes"
	"io"
	"sync"
)

// DeferredWriter holds newline-delimited output in memory until Flush is
// called. The TUI uses it to keep JSON lines off stdout until the alternate
// screen is released. Safe for concurrent use.
type DeferredWriter struct {
	mu    sync.Mutex
	buf   bytes.Buffer
	lines int
}

// Write stores data in the internal buffer.
func (d *DeferredWriter) Write(p []byte) (n int, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines += bytes.Count(p, []byte{'\n'})
	return d.buf.Write(p)
}

// Len returns the number of buffered bytes.
func (d *DeferredWriter) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Len()
}

// Lines returns the number of complete lines buffered since the last flush.
func (d *DeferredWriter) Lines() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lines
}

// Flush writes all buffered data to w and clears the buffer.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.buf.Len() == 0 {
		return nil
	}

	d.lines = 0
	_, err := d.buf.WriteTo(w)
	return err
}
