package model

// EventKind discriminates classified downloader output lines.
type EventKind int

const (
	// EventPlainLine is any output line without a percentage; always
	// appended to the log as a new line
	EventPlainLine EventKind = iota

	// EventProgress is a percent-complete line; consecutive progress
	// events replace the previously displayed progress line
	EventProgress
)

// OutputEvent is one classified line of downloader output.
// For EventProgress, Text holds the captured numeric string (e.g. "45.6");
// for EventPlainLine it holds the full trimmed line.
type OutputEvent struct {
	Kind EventKind
	Text string
}

// RunState represents the supervisor's lifecycle state for one window.
type RunState string

const (
	// RunStateIdle means no child process is active and a download may start
	RunStateIdle RunState = "Idle"

	// RunStateProbing means the pre-flight metadata probe is in flight
	RunStateProbing RunState = "Probing"

	// RunStateDownloading means the real download process is running
	RunStateDownloading RunState = "Downloading"
)

// String returns the string representation of RunState
func (rs RunState) String() string {
	return string(rs)
}

// IsActive returns true if a child process is running or about to run
func (rs RunState) IsActive() bool {
	return rs == RunStateProbing || rs == RunStateDownloading
}
