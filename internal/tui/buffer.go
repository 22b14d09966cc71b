package tui

import (
	"io"
	"strings"
	"sync"
)

// DefaultOutputLines is the capacity used when none is configured.
const DefaultOutputLines = 1000

// OutputBuffer keeps the most recent lines written to it. Anything printed
// during a session goes here instead of onto the screen; it is shown in the
// Messages region and dumped to the real stdout when the session ends.
//
// It is safe for concurrent use. Log lines may arrive from any goroutine.
type OutputBuffer struct {
	mu      sync.Mutex
	lines   []string
	partial string
	max     int
}

// NewOutputBuffer creates a buffer holding at most maxLines lines.
func NewOutputBuffer(maxLines int) *OutputBuffer {
	if maxLines <= 0 {
		maxLines = DefaultOutputLines
	}
	return &OutputBuffer{max: maxLines}
}

// Write implements io.Writer. A trailing fragment without a newline is held
// until the rest of the line arrives.
func (b *OutputBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	text := b.partial + string(p)
	parts := strings.Split(text, "\n")
	b.partial = parts[len(parts)-1]
	for _, line := range parts[:len(parts)-1] {
		b.lines = append(b.lines, strings.TrimRight(line, "\r"))
	}
	if over := len(b.lines) - b.max; over > 0 {
		b.lines = append([]string(nil), b.lines[over:]...)
	}
	return len(p), nil
}

// Read returns the buffered lines joined by newlines, including any
// unfinished line.
func (b *OutputBuffer) Read() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	text := strings.Join(b.lines, "\n")
	if b.partial != "" {
		if text != "" {
			text += "\n"
		}
		text += b.partial
	}
	return text
}

// Lines returns a copy of the complete lines.
func (b *OutputBuffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.lines...)
}

// MaxLines returns the buffer capacity.
func (b *OutputBuffer) MaxLines() int { return b.max }

// WriteTo dumps the buffer to w, one line per line.
func (b *OutputBuffer) WriteTo(w io.Writer) (int64, error) {
	text := b.Read()
	if text == "" {
		return 0, nil
	}
	n, err := io.WriteString(w, text+"\n")
	return int64(n), err
}
