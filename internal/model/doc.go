package model

// Package model defines the domain data structures used across the app:
// download requests, quality/bitrate choices, probe metadata, and the
// events the supervisor emits toward the UI.
