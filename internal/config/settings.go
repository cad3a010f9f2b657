package config

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ytget/ytdlp-gui/internal/platform"
)

// Downloader executable resolution
const (
	// DefaultExecutable is the external downloader looked up on the
	// process search path
	DefaultExecutable = "yt-dlp"

	// EnvExecutable overrides the downloader executable (name or path)
	EnvExecutable = "YTDLP_GUI_EXECUTABLE"
)

// Fallback save directory when even the home directory cannot be resolved
const FallbackSaveDir = "/tmp"

// Settings holds the window-scoped configuration. Values live for the
// duration of one run; nothing is persisted across runs.
type Settings struct {
	executable string
	saveDir    string
}

// NewSettings resolves the downloader executable and the initial save
// directory for this run.
func NewSettings() *Settings {
	exe := os.Getenv(EnvExecutable)
	if exe == "" {
		exe = DefaultExecutable
	}

	saveDir, err := platform.DefaultSaveDir()
	if err != nil {
		log.Warn().Err(err).Msg("failed to resolve default save directory")
		saveDir = FallbackSaveDir
	}

	return &Settings{
		executable: exe,
		saveDir:    saveDir,
	}
}

// Executable returns the downloader executable name or path
func (s *Settings) Executable() string {
	return s.executable
}

// SaveDir returns the current download destination directory
func (s *Settings) SaveDir() string {
	return s.saveDir
}

// SetSaveDir sets the download destination directory for this run
func (s *Settings) SetSaveDir(dir string) {
	if dir == "" {
		return
	}
	s.saveDir = dir
}
