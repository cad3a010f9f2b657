package download

import (
	"context"

	"github.com/ytget/ytdlp-gui/internal/model"
)

// Launcher abstracts child-process execution so the supervisor can be
// exercised in tests with a recording fake.
type Launcher interface {
	// RunProbe invokes the downloader synchronously and blocks until it
	// exits. It returns captured stdout and stderr; err is non-nil on
	// spawn failure or non-zero exit.
	RunProbe(ctx context.Context, exe string, args []string) (stdout, stderr []byte, err error)

	// StartDownload launches the downloader asynchronously. Every trimmed
	// non-empty output line (stdout and stderr) is passed to onLine;
	// onExit receives the process exit error, nil on success. The return
	// value covers spawn failures only.
	StartDownload(exe string, args []string, onLine func(string), onExit func(error)) error
}

// Supervisor defines the interface the UI drives downloads through.
type Supervisor interface {
	SetEventCallback(func(model.OutputEvent))
	SetStateCallback(func(model.RunState))
	State() model.RunState
	Start(req model.DownloadRequest, confirm ConfirmFunc) error
}
