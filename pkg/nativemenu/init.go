// Package nativemenu provides in-game overlay menus for game-modding script
// hosts: a title banner, a description bar, a scrollable list of buttons,
// checkboxes and cycling lists, and keyboard or controller navigation.
//
// The host owns rendering and input delivery. It constructs one Registry,
// builds menus through it, and forwards its per-frame draw callback, its
// timer tick and its key events to ProcessDrawing, ProcessController and
// ProcessKeyPress. Sounds, the player lock and the phone script are
// requested back through the Host collaborators.
package nativemenu

import (
	"log/slog"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first Registry is created to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the library logger used by registries that were not
// given their own.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the library logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CloseLog closes the log file opened through SetLogPath.
func CloseLog() {
	internal.CloseLogger()
}
