package download

import (
	"fmt"
	"path/filepath"

	"github.com/ytget/ytdlp-gui/internal/model"
)

// Downloader command-line flags
const (
	FlagOutput             = "-o"
	FlagFormat             = "-f"
	FlagMergeOutputFormat  = "--merge-output-format"
	FlagExtractAudio       = "-x"
	FlagAudioFormat        = "--audio-format"
	FlagAudioQuality       = "--audio-quality"
	FlagWriteSubs          = "--write-subs"
	FlagSubLangs           = "--sub-langs"
	FlagSponsorBlockRemove = "--sponsorblock-remove"
	FlagDumpJSON           = "--dump-json"
)

// Fixed argument values
const (
	// OutputTemplate names the downloaded file after the resource title
	OutputTemplate = "%(title)s.%(ext)s"

	// MergeContainer is the common video container requested for merged output
	MergeContainer = "mp4"

	// AudioFormat is the fixed output codec for audio-only extraction
	AudioFormat = "mp3"

	// SponsorBlockAll requests removal of every sponsor-segment category
	SponsorBlockAll = "all"

	// formatExprTemplate selects the best video capped at a pixel height
	// plus the best available audio
	formatExprTemplate = "bestvideo[height<=%d]+bestaudio/best"
)

// FormatExpr returns the downloader format expression for a video tier.
func FormatExpr(quality model.VideoQuality) string {
	return fmt.Sprintf(formatExprTemplate, quality.Height())
}

// BuildArgs translates a DownloadRequest into the ordered argument list
// for the downloader executable. It is pure: no process is touched.
func BuildArgs(req model.DownloadRequest) []string {
	args := make([]string, 0, 16)

	args = append(args, FlagOutput, filepath.Join(req.SaveDir, OutputTemplate))

	if req.VideoQuality.IsAudioOnly() {
		args = append(args,
			FlagExtractAudio,
			FlagAudioFormat, AudioFormat,
			FlagAudioQuality, req.AudioBitrate.Value())
	} else {
		args = append(args,
			FlagFormat, FormatExpr(req.VideoQuality),
			FlagMergeOutputFormat, MergeContainer)
	}

	if req.SubtitleLang != "" {
		args = append(args, FlagWriteSubs, FlagSubLangs, req.SubtitleLang)
	}

	if req.RemoveSponsorSegments {
		args = append(args, FlagSponsorBlockRemove, SponsorBlockAll)
	}

	// URL is always last
	return append(args, req.URL)
}

// ProbeArgs returns the argument list for the pre-flight metadata probe.
func ProbeArgs(url string) []string {
	return []string{FlagDumpJSON, url}
}
