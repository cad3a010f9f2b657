package platform

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Commands used to open a folder in the system file manager
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Well-known directory names under the user home
const (
	MoviesDirDarwin  = "Movies"
	VideosDirDefault = "Videos"
	DownloadsDir     = "Downloads"
)

// DefaultSaveDir resolves the initial download destination: the standard
// movies/videos location if it exists, otherwise Downloads, otherwise the
// user's home directory.
func DefaultSaveDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}

	moviesDir := VideosDirDefault
	if runtime.GOOS == OSDarwin {
		moviesDir = MoviesDirDarwin
	}

	for _, dir := range []string{
		filepath.Join(homeDir, moviesDir),
		filepath.Join(homeDir, DownloadsDir),
	} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}

	return homeDir, nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// OpenFolderInManager opens the given directory in the system file manager
func OpenFolderInManager(dirPath string) error {
	info, err := os.Stat(dirPath)
	if err != nil {
		return errors.Wrapf(err, "folder does not exist: %s", dirPath)
	}
	if !info.IsDir() {
		return errors.Errorf("not a directory: %s", dirPath)
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return errors.Wrap(err, "failed to get absolute path")
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Start()
	case OSWindows:
		return exec.Command(ExplorerCommand, absPath).Start()
	case OSLinux:
		return exec.Command(XDGOpenCommand, absPath).Start()
	default:
		return errors.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
