package ui

import (
	"strings"

	"github.com/ytget/ytdlp-gui/internal/model"
)

// ProgressLinePrefix precedes the rendered value of a progress event
const ProgressLinePrefix = "Progress: "

// LogBuffer accumulates output lines for the log view. Consecutive
// progress events overwrite a single line instead of stacking, so a
// running download occupies one slot that keeps updating in place.
// It is not safe for concurrent use; the UI appends from one thread.
type LogBuffer struct {
	lines           []string
	lastWasProgress bool
}

// NewLogBuffer creates an empty log buffer
func NewLogBuffer() *LogBuffer {
	return &LogBuffer{}
}

// Append adds the event to the buffer. A progress event replaces the
// previous line when that line was also a progress event.
func (b *LogBuffer) Append(ev model.OutputEvent) {
	if ev.Kind == model.EventProgress {
		line := ProgressLinePrefix + ev.Text
		if b.lastWasProgress && len(b.lines) > 0 {
			b.lines[len(b.lines)-1] = line
		} else {
			b.lines = append(b.lines, line)
		}
		b.lastWasProgress = true
		return
	}

	b.lines = append(b.lines, ev.Text)
	b.lastWasProgress = false
}

// Reset clears the buffer
func (b *LogBuffer) Reset() {
	b.lines = nil
	b.lastWasProgress = false
}

// Len returns the number of rendered lines
func (b *LogBuffer) Len() int {
	return len(b.lines)
}

// Lines returns the rendered lines
func (b *LogBuffer) Lines() []string {
	return b.lines
}

// String renders the buffer as newline-joined text
func (b *LogBuffer) String() string {
	return strings.Join(b.lines, "\n")
}
