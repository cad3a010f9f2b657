package download

import (
	"testing"

	"github.com/ytget/ytdlp-gui/internal/model"
)

func TestClassifyLineProgress(t *testing.T) {
	ev := ClassifyLine("[download]  45.6% of 10.00MiB")

	if ev.Kind != model.EventProgress {
		t.Fatalf("Expected progress event, got kind %d", ev.Kind)
	}
	if ev.Text != "45.6" {
		t.Errorf("Expected captured value %q, got %q", "45.6", ev.Text)
	}
}

func TestClassifyLinePlain(t *testing.T) {
	ev := ClassifyLine("ERROR: unsupported URL")

	if ev.Kind != model.EventPlainLine {
		t.Fatalf("Expected plain-line event, got kind %d", ev.Kind)
	}
	if ev.Text != "ERROR: unsupported URL" {
		t.Errorf("Expected full text, got %q", ev.Text)
	}
}

func TestClassifyLineFirstMatchOnly(t *testing.T) {
	ev := ClassifyLine("[download]  12.5% of 1MiB at 99.9% speed")

	if ev.Kind != model.EventProgress {
		t.Fatalf("Expected progress event, got kind %d", ev.Kind)
	}
	if ev.Text != "12.5" {
		t.Errorf("Expected first match %q, got %q", "12.5", ev.Text)
	}
}

func TestClassifyLineIntegerPercentIsPlain(t *testing.T) {
	// Only a decimal number followed by % counts as progress.
	ev := ClassifyLine("[download] 100% of 10.00MiB in 00:03")

	if ev.Kind != model.EventPlainLine {
		t.Errorf("Expected plain-line event for integer percent, got kind %d", ev.Kind)
	}
}

func TestClassifyLineTrimsWhitespace(t *testing.T) {
	ev := ClassifyLine("   [youtube] Extracting URL   ")

	if ev.Kind != model.EventPlainLine {
		t.Fatalf("Expected plain-line event, got kind %d", ev.Kind)
	}
	if ev.Text != "[youtube] Extracting URL" {
		t.Errorf("Expected trimmed text, got %q", ev.Text)
	}
}
