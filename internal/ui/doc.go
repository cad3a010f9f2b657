// Package ui contains the Fyne user interface of the application:
// the root window layout, the log view rendering and the compact theme.
package ui
