package download

// Package download implements the core pipeline around the external
// yt-dlp executable: argument assembly, the pre-flight metadata probe,
// output-line classification, and the process supervisor that enforces
// the one-active-download invariant and propagates events to the UI.
