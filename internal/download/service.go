package download

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/ytget/ytdlp-gui/internal/model"
)

// Log banner text. Non-fatal and fatal outcomes alike are surfaced as a
// message wrapped by separator lines in the log view.
const (
	BannerSeparator = "---------------------"

	MsgDownloadingURL    = "Downloading URL: %s"
	MsgDownloadComplete  = "Download Complete"
	MsgDownloadFailed    = "Download Failed"
	MsgInvalidMetadata   = "Invalid metadata from yt-dlp"
	MsgProbeFailedPrefix = "Failed to get metadata: "
	MsgSpawnFailedPrefix = "Failed to start download: "
)

// ConfirmFunc asks the user to approve downloading a collection of
// itemCount items. Returning false aborts the attempt cleanly.
type ConfirmFunc func(title string, itemCount int) bool

// Service supervises at most one downloader child process per window.
// Output events and state transitions are delivered through callbacks;
// callers must treat them as arriving from a background goroutine.
type Service struct {
	exe      string
	launcher Launcher

	mu    sync.Mutex
	state model.RunState

	onEvent func(model.OutputEvent)
	onState func(model.RunState)
}

// NewService creates a new supervisor for the given downloader executable.
func NewService(exe string, launcher Launcher) *Service {
	return &Service{
		exe:      exe,
		launcher: launcher,
		state:    model.RunStateIdle,
	}
}

// SetEventCallback sets the callback receiving classified output events
func (s *Service) SetEventCallback(callback func(model.OutputEvent)) {
	s.onEvent = callback
}

// SetStateCallback sets the callback receiving run-state transitions
func (s *Service) SetStateCallback(callback func(model.RunState)) {
	s.onState = callback
}

// State returns the current run state
func (s *Service) State() model.RunState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start runs the pre-flight probe and, if it resolves favorably, spawns
// the download process. It blocks through the probe and the confirmation
// but returns as soon as the download is spawned; completion is reported
// via the event and state callbacks. Callers run it off the UI thread.
func (s *Service) Start(req model.DownloadRequest, confirm ConfirmFunc) error {
	s.mu.Lock()
	if s.state.IsActive() {
		s.mu.Unlock()
		return ErrDownloadActive
	}
	s.state = model.RunStateProbing
	s.mu.Unlock()
	s.notifyState(model.RunStateProbing)

	runID := uuid.NewString()
	logger := log.With().Str("run_id", runID).Str("url", req.URL).Logger()
	logger.Info().Msg("starting pre-flight probe")

	stdout, stderr, err := s.launcher.RunProbe(context.Background(), s.exe, ProbeArgs(req.URL))
	if err != nil {
		detail := strings.TrimSpace(string(stderr))
		if detail == "" {
			detail = err.Error()
		}
		logger.Error().Err(err).Msg("probe failed")
		s.emitBanner(MsgProbeFailedPrefix + detail)
		s.toIdle()
		return errors.Wrap(ErrProbeFailed, detail)
	}

	result, err := ParseProbeOutput(stdout)
	if err != nil {
		logger.Error().Err(err).Msg("probe output unparsable")
		s.emitBanner(MsgInvalidMetadata)
		s.toIdle()
		return ErrInvalidMetadata
	}

	if result.IsMultiItem() {
		logger.Info().Str("title", result.Title).Int("items", result.ItemCount).
			Msg("multi-item resource, asking for confirmation")
		if confirm == nil || !confirm(result.Title, result.ItemCount) {
			logger.Info().Msg("multi-item download declined")
			s.toIdle()
			return nil
		}
	}

	s.setState(model.RunStateDownloading)
	s.emitEvent(model.OutputEvent{
		Kind: model.EventPlainLine,
		Text: fmt.Sprintf(MsgDownloadingURL, req.URL),
	})

	args := BuildArgs(req)
	logger.Info().Strs("args", args).Msg("spawning download process")

	err = s.launcher.StartDownload(s.exe, args,
		func(line string) {
			s.emitEvent(ClassifyLine(line))
		},
		func(exitErr error) {
			if exitErr != nil {
				logger.Error().Err(exitErr).Msg("download process failed")
				s.emitBanner(MsgDownloadFailed)
			} else {
				logger.Info().Msg("download process completed")
				s.emitBanner(MsgDownloadComplete)
			}
			s.toIdle()
		})
	if err != nil {
		logger.Error().Err(err).Msg("failed to spawn download process")
		s.emitBanner(MsgSpawnFailedPrefix + err.Error())
		s.toIdle()
		return errors.Wrap(err, "failed to start download")
	}

	return nil
}

// setState records and broadcasts a new run state
func (s *Service) setState(state model.RunState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	s.notifyState(state)
}

// toIdle releases the process slot and broadcasts the idle state so the
// UI re-enables the start button. Every terminal path goes through here.
func (s *Service) toIdle() {
	s.setState(model.RunStateIdle)
}

// emitBanner emits a message wrapped by separator lines
func (s *Service) emitBanner(message string) {
	for _, text := range []string{BannerSeparator, message, BannerSeparator} {
		s.emitEvent(model.OutputEvent{Kind: model.EventPlainLine, Text: text})
	}
}

// emitEvent calls the event callback if set
func (s *Service) emitEvent(ev model.OutputEvent) {
	if s.onEvent != nil {
		s.onEvent(ev)
	}
}

// notifyState calls the state callback if set
func (s *Service) notifyState(state model.RunState) {
	if s.onState != nil {
		s.onState(state)
	}
}
