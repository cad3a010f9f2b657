package ui

import (
	"fmt"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/ytget/ytdlp-gui/internal/config"
	"github.com/ytget/ytdlp-gui/internal/download"
	"github.com/ytget/ytdlp-gui/internal/model"
	"github.com/ytget/ytdlp-gui/internal/platform"
)

// RootUI represents the main window layout
type RootUI struct {
	window   fyne.Window
	settings *config.Settings
	svc      download.Supervisor

	urlEntry       *widget.Entry
	qualitySelect  *widget.Select
	bitrateSelect  *widget.Select
	subtitleSelect *widget.Select
	sponsorCheck   *widget.Check
	savePathEntry  *widget.Entry
	chooseBtn      *widget.Button
	openBtn        *widget.Button
	downloadBtn    *widget.Button

	logBuf    *LogBuffer
	logLabel  *widget.Label
	logScroll *container.Scroll
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, svc download.Supervisor) *RootUI {
	ui := &RootUI{
		window:   window,
		settings: settings,
		svc:      svc,
		logBuf:   NewLogBuffer(),
	}

	svc.SetEventCallback(ui.onOutputEvent)
	svc.SetStateCallback(ui.onStateChange)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(PlaceholderURL)
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.qualitySelect = widget.NewSelect(model.VideoQualityOptions(), nil)
	ui.qualitySelect.SetSelected(model.Quality4K.String())

	ui.bitrateSelect = widget.NewSelect(model.AudioBitrateOptions(), nil)
	ui.bitrateSelect.SetSelected(string(model.Bitrate320))

	ui.subtitleSelect = widget.NewSelect(model.SubtitleOptions(), nil)
	ui.subtitleSelect.SetSelected(model.SubtitleNone)

	ui.sponsorCheck = widget.NewCheck(LabelSponsorBlock, nil)

	ui.savePathEntry = widget.NewEntry()
	ui.savePathEntry.SetPlaceHolder(PlaceholderSavePath)
	ui.savePathEntry.SetText(ui.settings.SaveDir())
	ui.savePathEntry.Disable()

	ui.chooseBtn = widget.NewButton(LabelChooseFolder, ui.onChooseFolder)
	ui.openBtn = widget.NewButton(LabelOpenFolder, ui.onOpenFolder)

	ui.downloadBtn = widget.NewButton(LabelDownload, ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.logLabel = widget.NewLabel("")
	ui.logLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.logLabel.Wrapping = fyne.TextWrapWord
	ui.logScroll = container.NewVScroll(ui.logLabel)

	form := container.NewVBox(
		ui.urlEntry,
		widget.NewForm(
			widget.NewFormItem(LabelQualityRow, ui.qualitySelect),
			widget.NewFormItem(LabelBitrateRow, ui.bitrateSelect),
			widget.NewFormItem(LabelSubtitleRow, ui.subtitleSelect),
		),
		ui.sponsorCheck,
		container.NewBorder(nil, nil, widget.NewLabel(LabelSaveRow),
			container.NewHBox(ui.chooseBtn, ui.openBtn), ui.savePathEntry),
		ui.downloadBtn,
	)

	ui.window.SetContent(container.NewBorder(form, nil, nil, nil, ui.logScroll))
}

// onChooseFolder lets the user pick a new save directory
func (ui *RootUI) onChooseFolder() {
	dialog.ShowFolderOpen(func(dir fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if dir == nil {
			return
		}
		ui.settings.SetSaveDir(dir.Path())
		ui.savePathEntry.SetText(dir.Path())
	}, ui.window)
}

// onOpenFolder reveals the save directory in the system file manager
func (ui *RootUI) onOpenFolder() {
	if err := platform.OpenFolderInManager(ui.settings.SaveDir()); err != nil {
		dialog.ShowError(err, ui.window)
	}
}

// onDownloadClick validates the form and starts a download attempt
func (ui *RootUI) onDownloadClick() {
	rawURL := strings.TrimSpace(ui.urlEntry.Text)
	if rawURL == "" || ui.settings.SaveDir() == "" {
		dialog.ShowError(errors.New(MsgMissingInput), ui.window)
		return
	}

	// Warn once for links without a web scheme; yt-dlp may still accept them.
	parsed, err := url.Parse(rawURL)
	if err == nil && !strings.HasPrefix(parsed.Scheme, "http") {
		dialog.ShowConfirm(TitleNonHTTPWarning, MsgNonHTTPWarning, func(ok bool) {
			if ok {
				ui.beginDownload(rawURL)
			}
		}, ui.window)
		return
	}

	ui.beginDownload(rawURL)
}

// beginDownload hands the request to the supervisor on a background
// goroutine. The button is disabled immediately so a double click
// cannot race the state callback.
func (ui *RootUI) beginDownload(rawURL string) {
	req := model.DownloadRequest{
		URL:                   rawURL,
		SaveDir:               ui.settings.SaveDir(),
		VideoQuality:          model.VideoQuality(ui.qualitySelect.Selected),
		AudioBitrate:          model.AudioBitrate(ui.bitrateSelect.Selected),
		SubtitleLang:          model.SubtitleCode(ui.subtitleSelect.Selected),
		RemoveSponsorSegments: ui.sponsorCheck.Checked,
	}

	ui.setBusy(true)

	go func() {
		if err := ui.svc.Start(req, ui.confirmMultiItem); err != nil {
			log.Error().Err(err).Str("url", req.URL).Msg("download attempt failed")
		}
	}()
}

// confirmMultiItem asks the user to approve a multi-video download.
// It runs on the supervisor goroutine and blocks until the dialog is
// answered.
func (ui *RootUI) confirmMultiItem(title string, itemCount int) bool {
	answer := make(chan bool, 1)
	fyne.Do(func() {
		message := fmt.Sprintf(MsgMultiItemFormat, title, itemCount)
		dialog.ShowConfirm(TitleMultiItem, message, func(ok bool) {
			answer <- ok
		}, ui.window)
	})
	return <-answer
}

// onOutputEvent renders one classified output line into the log view.
// Called from the supervisor goroutine.
func (ui *RootUI) onOutputEvent(ev model.OutputEvent) {
	fyne.Do(func() {
		ui.logBuf.Append(ev)
		ui.renderLog()
	})
}

// onStateChange tracks run-state transitions. The log is cleared when a
// new download actually begins, so pre-flight failures of the next
// attempt stay visible alongside the previous session.
func (ui *RootUI) onStateChange(state model.RunState) {
	fyne.Do(func() {
		switch state {
		case model.RunStateDownloading:
			ui.logBuf.Reset()
			ui.renderLog()
			ui.setBusy(true)
		case model.RunStateProbing:
			ui.setBusy(true)
		case model.RunStateIdle:
			ui.setBusy(false)
		}
	})
}

// renderLog pushes the buffer into the label and scrolls to the bottom
func (ui *RootUI) renderLog() {
	ui.logLabel.SetText(ui.logBuf.String())
	ui.logScroll.ScrollToBottom()
}

// setBusy toggles the download button between its idle and active looks
func (ui *RootUI) setBusy(busy bool) {
	if busy {
		ui.downloadBtn.SetText(LabelDownloading)
		ui.downloadBtn.Disable()
		return
	}
	ui.downloadBtn.SetText(LabelDownload)
	ui.downloadBtn.Enable()
}
