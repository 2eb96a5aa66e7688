// Package listkit provides a self-painted, virtualized list widget.
//
// A List owns its rows, scroll position, hover and selection state. It
// paints only the visible rows onto a Canvas supplied by a host toolkit,
// drives a ScrollRange abstraction instead of embedding a scrollbar, and
// reports clicks, focus and selection changes to registered observers.
// Hosts forward raw input (pointer, wheel, keys, resize) to the List's
// entry points; see the sdlhost and termhost packages for complete hosts.
package listkit

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/BrandonKowalski/listkit/pkg/listkit/internal"
)

// Theme is the set of colours a List paints with.
type Theme = internal.Theme

// Padding is the inset between a row's edge and its text.
type Padding = internal.Padding

// Options configures process-wide listkit behaviour.
type Options struct {
	LogPath   string // Full path for the log file including filename (creates parent directories)
	LogLevel  string // Application log level ("debug", "info", "warn", "error")
	NoConsole bool   // Log only to LogPath, for hosts that draw on the terminal
	Debug     bool   // Log ignored calls (out of range indices, invalid geometry)
	ThemePath string // TOML theme file applied on top of Theme
	Theme     *Theme // Default theme for lists created after Init; nil keeps the built-in one
}

// Init sets up logging and the default theme. It is optional: a List works
// without it, logging JSON to stdout with the built-in light theme.
// LISTKIT_LOG_LEVEL and LISTKIT_THEME fill LogLevel and ThemePath when
// those are empty.
func Init(options Options) error {
	if options.NoConsole {
		internal.DisableConsoleLogging()
	}
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if options.LogLevel == "" {
		options.LogLevel = os.Getenv(constants.LogLevelEnvVar)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if options.Debug {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	theme := internal.GetTheme()
	if options.Theme != nil {
		theme = *options.Theme
	}

	if options.ThemePath == "" {
		options.ThemePath = os.Getenv(constants.ThemePathEnvVar)
	}
	if options.ThemePath != "" {
		loaded, err := internal.LoadTheme(options.ThemePath, theme)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to load theme", "path", options.ThemePath, "error", err)
			return err
		}
		theme = loaded
	}

	internal.SetTheme(theme)
	return nil
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// DefaultTheme returns the theme new lists pick up.
func DefaultTheme() Theme {
	return internal.GetTheme()
}

// HexToColor converts 0xRRGGBB into an opaque colour.
var HexToColor = internal.HexToColor
