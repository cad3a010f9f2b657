package download

import "github.com/pkg/errors"

var (
	// ErrDownloadActive is returned when Start is called while a child
	// process is already being supervised
	ErrDownloadActive = errors.New("a download is already running")

	// ErrProbeFailed is returned when the pre-flight probe exits non-zero
	ErrProbeFailed = errors.New("failed to get metadata")

	// ErrInvalidMetadata is returned when the probe output cannot be
	// parsed as the expected structured format
	ErrInvalidMetadata = errors.New("invalid metadata")
)
