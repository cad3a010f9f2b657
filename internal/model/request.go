package model

import "strings"

// VideoQuality represents the video quality choice offered in the UI.
type VideoQuality string

const (
	// Quality4K caps vertical resolution at 2160 pixels
	Quality4K VideoQuality = "4K (2160p)"

	// Quality1080p caps vertical resolution at 1080 pixels
	Quality1080p VideoQuality = "1080p"

	// Quality720p caps vertical resolution at 720 pixels
	Quality720p VideoQuality = "720p"

	// Quality480p caps vertical resolution at 480 pixels
	Quality480p VideoQuality = "480p"

	// QualityAudioOnly skips video and extracts audio only
	QualityAudioOnly VideoQuality = "Audio Only"
)

// String returns the string representation of VideoQuality
func (q VideoQuality) String() string {
	return string(q)
}

// IsAudioOnly returns true if the choice requests audio extraction instead of video
func (q VideoQuality) IsAudioOnly() bool {
	return q == QualityAudioOnly
}

// Height returns the pixel height cap for the quality tier, or 0 for audio-only
func (q VideoQuality) Height() int {
	switch q {
	case Quality4K:
		return 2160
	case Quality1080p:
		return 1080
	case Quality720p:
		return 720
	case Quality480p:
		return 480
	default:
		return 0
	}
}

// VideoQualityOptions returns the quality choices in UI order, highest first
func VideoQualityOptions() []string {
	return []string{
		Quality4K.String(),
		Quality1080p.String(),
		Quality720p.String(),
		Quality480p.String(),
		QualityAudioOnly.String(),
	}
}

// AudioBitrate represents the audio bitrate choice offered in the UI.
type AudioBitrate string

const (
	Bitrate320 AudioBitrate = "320kbps"
	Bitrate256 AudioBitrate = "256kbps"
	Bitrate128 AudioBitrate = "128kbps"
)

// BitrateSuffix is stripped from the UI label to obtain the numeric argument
const BitrateSuffix = "kbps"

// String returns the string representation of AudioBitrate
func (b AudioBitrate) String() string {
	return string(b)
}

// Value returns the numeric bitrate as passed to the downloader (e.g. "256")
func (b AudioBitrate) Value() string {
	return strings.TrimSuffix(string(b), BitrateSuffix)
}

// AudioBitrateOptions returns the bitrate choices in UI order, highest first
func AudioBitrateOptions() []string {
	return []string{
		Bitrate320.String(),
		Bitrate256.String(),
		Bitrate128.String(),
	}
}

// Subtitle selector constants
const (
	SubtitleNone = "None"

	subtitleCodeOpen  = "("
	subtitleCodeClose = ")"
)

// SubtitleOptions returns the subtitle language choices in UI order
func SubtitleOptions() []string {
	return []string{
		SubtitleNone,
		"English (en)",
		"French (fr)",
		"Spanish (es)",
		"German (de)",
		"Italian (it)",
		"Portuguese (pt)",
		"Russian (ru)",
		"Japanese (ja)",
		"Chinese (zh)",
		"Arabic (ar)",
	}
}

// SubtitleCode extracts the language code from a UI label such as
// "English (en)". It returns "" for SubtitleNone or an unrecognized label.
func SubtitleCode(label string) string {
	if label == "" || label == SubtitleNone {
		return ""
	}
	open := strings.Index(label, subtitleCodeOpen)
	if open < 0 {
		return ""
	}
	end := strings.Index(label[open:], subtitleCodeClose)
	if end < 0 {
		return ""
	}
	return label[open+1 : open+end]
}

// DownloadRequest carries everything needed to build one downloader
// invocation. It is built from UI state at the moment the user clicks
// Download and is not mutated afterwards.
type DownloadRequest struct {
	URL                   string
	SaveDir               string
	VideoQuality          VideoQuality
	AudioBitrate          AudioBitrate
	SubtitleLang          string // ISO language code, empty for none
	RemoveSponsorSegments bool
}
