package ui

import (
	"testing"

	"github.com/ytget/ytdlp-gui/internal/model"
)

func plain(text string) model.OutputEvent {
	return model.OutputEvent{Kind: model.EventPlainLine, Text: text}
}

func progress(value string) model.OutputEvent {
	return model.OutputEvent{Kind: model.EventProgress, Text: value}
}

func TestLogBufferProgressOverwrites(t *testing.T) {
	buf := NewLogBuffer()
	buf.Append(plain("[youtube] Extracting URL"))
	buf.Append(progress("10.0"))
	buf.Append(progress("55.0"))

	if buf.Len() != 2 {
		t.Fatalf("Expected 2 lines, got %d: %v", buf.Len(), buf.Lines())
	}
	if got := buf.Lines()[1]; got != "Progress: 55.0" {
		t.Errorf("Expected latest progress value, got %q", got)
	}
}

func TestLogBufferPlainBreaksOverwrite(t *testing.T) {
	buf := NewLogBuffer()
	buf.Append(progress("10.0"))
	buf.Append(plain("[download] Destination: video.mp4"))
	buf.Append(progress("20.0"))

	want := []string{
		"Progress: 10.0",
		"[download] Destination: video.mp4",
		"Progress: 20.0",
	}
	got := buf.Lines()
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestLogBufferFirstEventIsProgress(t *testing.T) {
	buf := NewLogBuffer()
	buf.Append(progress("5.0"))

	if buf.Len() != 1 {
		t.Fatalf("Expected 1 line, got %d", buf.Len())
	}
	if buf.String() != "Progress: 5.0" {
		t.Errorf("Expected rendered progress line, got %q", buf.String())
	}
}

func TestLogBufferReset(t *testing.T) {
	buf := NewLogBuffer()
	buf.Append(plain("line"))
	buf.Append(progress("50.0"))
	buf.Reset()

	if buf.Len() != 0 {
		t.Fatalf("Expected empty buffer, got %d lines", buf.Len())
	}

	// Overwrite state must not survive the reset.
	buf.Append(progress("1.0"))
	if buf.Len() != 1 {
		t.Errorf("Expected 1 line after reset, got %d", buf.Len())
	}
}

func TestLogBufferString(t *testing.T) {
	buf := NewLogBuffer()
	buf.Append(plain("first"))
	buf.Append(plain("second"))

	if buf.String() != "first\nsecond" {
		t.Errorf("Expected newline-joined text, got %q", buf.String())
	}
}
