// Package themes provides built-in colour schemes for lists.
package themes

import (
	"sort"

	"github.com/BrandonKowalski/listkit/pkg/listkit/internal"
)

// Light is the default scheme: dark text on white rows with a blue selection.
func Light(fontPath string) internal.Theme {
	return internal.Theme{
		BackgroundColor:          internal.HexToColor(0xFFFFFF),
		SelectionBackgroundColor: internal.HexToColor(0x3399FF),
		SelectionTextColor:       internal.HexToColor(0xFFFFFF),
		HoverColor:               internal.WithAlpha(internal.HexToColor(0xE6E6E6), 128),
		ItemTextColor:            internal.HexToColor(0x000000),
		ItemBackgroundColor:      internal.HexToColor(0xFFFFFF),
		ScrollbarTrackColor:      internal.HexToColor(0xF0F0F0),
		ScrollbarThumbColor:      internal.HexToColor(0xA0A0A0),
		FontPath:                 fontPath,
	}
}

// Dark inverts Light for dim rooms and OLED panels.
func Dark(fontPath string) internal.Theme {
	return internal.Theme{
		BackgroundColor:          internal.HexToColor(0x1E1E1E),
		SelectionBackgroundColor: internal.HexToColor(0x264F78),
		SelectionTextColor:       internal.HexToColor(0xFFFFFF),
		HoverColor:               internal.WithAlpha(internal.HexToColor(0x3A3D41), 160),
		ItemTextColor:            internal.HexToColor(0xD4D4D4),
		ItemBackgroundColor:      internal.HexToColor(0x252526),
		ScrollbarTrackColor:      internal.HexToColor(0x2D2D2D),
		ScrollbarThumbColor:      internal.HexToColor(0x5A5A5A),
		FontPath:                 fontPath,
	}
}

// Teal mirrors the Cannoli firmware palette.
func Teal(fontPath string) internal.Theme {
	return internal.Theme{
		BackgroundColor:          internal.HexToColor(0x000000),
		SelectionBackgroundColor: internal.HexToColor(0x008080),
		SelectionTextColor:       internal.HexToColor(0xFFFFFF),
		HoverColor:               internal.WithAlpha(internal.HexToColor(0xFFFFFF), 48),
		ItemTextColor:            internal.HexToColor(0xFFFFFF),
		ItemBackgroundColor:      internal.HexToColor(0x000000),
		ScrollbarTrackColor:      internal.HexToColor(0x101010),
		ScrollbarThumbColor:      internal.HexToColor(0x008080),
		FontPath:                 fontPath,
	}
}

var presets = map[string]func(string) internal.Theme{
	"light": Light,
	"dark":  Dark,
	"teal":  Teal,
}

// ByName returns the preset called name.
func ByName(name, fontPath string) (internal.Theme, bool) {
	fn, ok := presets[name]
	if !ok {
		return internal.Theme{}, false
	}
	return fn(fontPath), true
}

// Names lists the preset names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
