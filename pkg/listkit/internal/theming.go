package internal

import (
	"fmt"
	"image/color"

	"github.com/BurntSushi/toml"
)

// Theme defines the visual appearance of a list.
type Theme struct {
	BackgroundColor          color.RGBA // Widget background behind and between rows
	SelectionBackgroundColor color.RGBA // Selected row background
	SelectionTextColor       color.RGBA // Text on selected rows
	HoverColor               color.RGBA // Tint drawn over the hovered, unselected row
	ItemTextColor            color.RGBA // Default text colour for new items
	ItemBackgroundColor      color.RGBA // Default background colour for new items
	ScrollbarTrackColor      color.RGBA
	ScrollbarThumbColor      color.RGBA
	FontPath                 string // Path to the primary UI font (SDL host only)
}

var currentTheme = Theme{
	BackgroundColor:          HexToColor(0xFFFFFF),
	SelectionBackgroundColor: HexToColor(0x3399FF),
	SelectionTextColor:       HexToColor(0xFFFFFF),
	HoverColor:               WithAlpha(HexToColor(0xE6E6E6), 128),
	ItemTextColor:            HexToColor(0x000000),
	ItemBackgroundColor:      HexToColor(0xFFFFFF),
	ScrollbarTrackColor:      HexToColor(0xF0F0F0),
	ScrollbarThumbColor:      HexToColor(0xA0A0A0),
}

// SetTheme sets the default theme picked up by lists created afterwards.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the current default theme.
func GetTheme() Theme {
	return currentTheme
}

// HexColor is a colour written as a "#RRGGBB" string in theme files.
type HexColor struct {
	Color color.RGBA
	set   bool
}

func (h *HexColor) UnmarshalText(text []byte) error {
	c, err := ParseHexColor(string(text))
	if err != nil {
		return err
	}
	h.Color = c
	h.set = true
	return nil
}

func (h HexColor) MarshalText() ([]byte, error) {
	return []byte(ColorToHex(h.Color)), nil
}

type themeFile struct {
	FontPath            string   `toml:"font_path"`
	Background          HexColor `toml:"background"`
	SelectionBackground HexColor `toml:"selection_background"`
	SelectionText       HexColor `toml:"selection_text"`
	Hover               HexColor `toml:"hover"`
	HoverAlpha          *uint8   `toml:"hover_alpha"`
	ItemText            HexColor `toml:"item_text"`
	ItemBackground      HexColor `toml:"item_background"`
	ScrollbarTrack      HexColor `toml:"scrollbar_track"`
	ScrollbarThumb      HexColor `toml:"scrollbar_thumb"`
}

// LoadTheme reads a TOML theme file and overlays the keys it sets onto base.
func LoadTheme(path string, base Theme) (Theme, error) {
	var tf themeFile
	md, err := toml.DecodeFile(path, &tf)
	if err != nil {
		return base, fmt.Errorf("load theme %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		GetInternalLogger().Warn("Unknown theme key", "path", path, "key", key.String())
	}
	return tf.apply(base), nil
}

// DecodeTheme parses TOML theme data and overlays it onto base.
func DecodeTheme(data string, base Theme) (Theme, error) {
	var tf themeFile
	if _, err := toml.Decode(data, &tf); err != nil {
		return base, fmt.Errorf("decode theme: %w", err)
	}
	return tf.apply(base), nil
}

func (tf themeFile) apply(t Theme) Theme {
	if tf.FontPath != "" {
		t.FontPath = tf.FontPath
	}
	overlay := func(dst *color.RGBA, src HexColor) {
		if src.set {
			*dst = src.Color
		}
	}
	overlay(&t.BackgroundColor, tf.Background)
	overlay(&t.SelectionBackgroundColor, tf.SelectionBackground)
	overlay(&t.SelectionTextColor, tf.SelectionText)
	if tf.Hover.set {
		// An opaque hover colour keeps the base translucency.
		hover := tf.Hover.Color
		if hover.A == 255 {
			hover.A = t.HoverColor.A
		}
		t.HoverColor = hover
	}
	if tf.HoverAlpha != nil {
		t.HoverColor.A = *tf.HoverAlpha
	}
	overlay(&t.ItemTextColor, tf.ItemText)
	overlay(&t.ItemBackgroundColor, tf.ItemBackground)
	overlay(&t.ScrollbarTrackColor, tf.ScrollbarTrack)
	overlay(&t.ScrollbarThumbColor, tf.ScrollbarThumb)
	return t
}
