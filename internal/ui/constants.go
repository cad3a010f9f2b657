package ui

// Button and label text
const (
	LabelDownload     = "Download"
	LabelDownloading  = "Downloading..."
	LabelChooseFolder = "Choose Folder"
	LabelOpenFolder   = "Open Folder"
	LabelSponsorBlock = "Remove sponsor segments"

	LabelQualityRow  = "Quality"
	LabelBitrateRow  = "Audio Bitrate"
	LabelSubtitleRow = "Subtitles"
	LabelSaveRow     = "Save To"
)

// Entry placeholders
const (
	PlaceholderURL      = "Paste video link here"
	PlaceholderSavePath = "Change via Choose Folder"
)

// Dialog titles and messages
const (
	TitleMultiItem      = "Multiple Videos Detected"
	TitleNonHTTPWarning = "Warning"
	TitleInputError     = "Input Error"

	MsgMissingInput    = "Please provide a URL and save folder."
	MsgNonHTTPWarning  = "The URL does not look like a web link. Continue anyway?"
	MsgMultiItemFormat = "You are attempting to download %q with %d videos. Are you sure?"
)
