package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ytget/ytdlp-gui/internal/config"
	"github.com/ytget/ytdlp-gui/internal/download"
	"github.com/ytget/ytdlp-gui/internal/platform"
	"github.com/ytget/ytdlp-gui/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.ytdlp-gui"
	AppName = "yt-dlp GUI"

	WindowWidth  = 600
	WindowHeight = 400
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Info().Str("version", version).Msg("starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings()
	if err := platform.CreateDirectoryIfNotExists(settings.SaveDir()); err != nil {
		log.Warn().Err(err).Str("dir", settings.SaveDir()).Msg("could not create save directory")
	}

	svc := download.NewService(settings.Executable(), download.NewLauncher())
	ui.NewRootUI(myWindow, settings, svc)

	myWindow.ShowAndRun()
}
