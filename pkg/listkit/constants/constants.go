// Package constants defines shared constants, enums, and configuration values
// used throughout the listkit widget and its hosts.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read by listkit and its hosts.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	LogLevelEnvVar     = "LISTKIT_LOG_LEVEL"
	ThemePathEnvVar    = "LISTKIT_THEME"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Default geometry of a list.
const (
	DefaultItemHeight     = 40
	DefaultSpacing        = 2
	DefaultScrollbarWidth = 16
	DefaultTextPadding    = 10
	// DefaultHoverAlpha is the opacity of the hover tint drawn over unselected rows.
	DefaultHoverAlpha uint8 = 128
)

// Default timing constants.
const (
	DefaultDoubleClickInterval = 400 * time.Millisecond
	DefaultRepeatDelay         = 300 * time.Millisecond
	DefaultRepeatInterval      = 50 * time.Millisecond
)

// SelectionMode controls how clicks and keys change the selected set.
type SelectionMode int

const (
	SelectionSingle SelectionMode = iota // At most one selected item, always the current one
	SelectionMulti                       // Arbitrary subset, ctrl toggles and shift extends
	SelectionNone                        // Nothing is ever selected or current
)

func (m SelectionMode) String() string {
	switch m {
	case SelectionSingle:
		return "single"
	case SelectionMulti:
		return "multi"
	case SelectionNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseSelectionMode maps "single", "multi" or "none" to a SelectionMode.
func ParseSelectionMode(s string) (SelectionMode, bool) {
	switch s {
	case "single":
		return SelectionSingle, true
	case "multi":
		return SelectionMulti, true
	case "none":
		return SelectionNone, true
	}
	return SelectionSingle, false
}

// Modifier is a bit set of keyboard modifiers held during a pointer or key event.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << iota // Toggle membership in Multi mode
	ModShift                      // Extend a range in Multi mode
	ModAlt
)

// Has reports whether all bits of o are set in m.
func (m Modifier) Has(o Modifier) bool {
	return o != 0 && m&o == o
}

// Key represents an abstract navigation key, mapped from a host's physical keys.
type Key int

const (
	KeyUnassigned Key = iota
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeySpace
	KeyEnter
)

func (k Key) GetName() string {
	switch k {
	case KeyUnassigned:
		return "Unassigned"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	default:
		return "Unknown"
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)
