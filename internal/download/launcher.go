package download

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// execLauncher runs the downloader via os/exec.
type execLauncher struct{}

// NewLauncher returns a Launcher backed by os/exec.
func NewLauncher() Launcher {
	return &execLauncher{}
}

// RunProbe invokes the downloader synchronously and blocks until it exits.
func (l *execLauncher) RunProbe(ctx context.Context, exe string, args []string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, exe, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), stderr.Bytes(), errors.Wrap(err, "probe run failed")
	}
	return stdout.Bytes(), stderr.Bytes(), nil
}

// StartDownload launches the downloader and streams its output lines.
func (l *execLauncher) StartDownload(exe string, args []string, onLine func(string), onExit func(error)) error {
	cmd := exec.Command(exe, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrap(err, "failed to capture stdout")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return errors.Wrap(err, "failed to capture stderr")
	}

	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "failed to start process")
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		scanLines(stdout, onLine)
	}()
	go func() {
		defer wg.Done()
		scanLines(stderr, onLine)
	}()

	go func() {
		// Both pipes must be drained before Wait closes them.
		wg.Wait()
		onExit(cmd.Wait())
	}()

	return nil
}

// scanLines feeds each trimmed non-empty line from r to fn.
func scanLines(r io.Reader, fn func(string)) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fn(line)
	}
	if err := sc.Err(); err != nil {
		log.Warn().Err(err).Msg("output stream read error")
	}
}
