package platform

// Package platform contains OS integration helpers: default save
// directory resolution, directory creation, and opening a folder in the
// system file manager.
