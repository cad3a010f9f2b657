package download

import (
	"regexp"
	"strings"

	"github.com/ytget/ytdlp-gui/internal/model"
)

// progressRe matches a decimal number immediately followed by a percent
// sign anywhere in an output line (e.g. "[download]  45.6% of 10.00MiB").
var progressRe = regexp.MustCompile(`(\d+\.\d+)%`)

// ClassifyLine turns one line of downloader output into either a progress
// event carrying the first captured percentage, or a plain-line event
// carrying the trimmed text.
func ClassifyLine(line string) model.OutputEvent {
	trimmed := strings.TrimSpace(line)
	if m := progressRe.FindStringSubmatch(trimmed); m != nil {
		return model.OutputEvent{Kind: model.EventProgress, Text: m[1]}
	}
	return model.OutputEvent{Kind: model.EventPlainLine, Text: trimmed}
}
