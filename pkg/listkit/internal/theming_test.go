package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTheme_OverlaysOnlySetKeys(t *testing.T) {
	base := GetTheme()

	theme, err := DecodeTheme(`
selection_background = "#FF0000"
hover = "#00FF00"
`, base)
	require.NoError(t, err)

	assert.Equal(t, HexToColor(0xFF0000), theme.SelectionBackgroundColor)
	assert.Equal(t, WithAlpha(HexToColor(0x00FF00), base.HoverColor.A), theme.HoverColor)
	assert.Equal(t, base.BackgroundColor, theme.BackgroundColor)
	assert.Equal(t, base.SelectionTextColor, theme.SelectionTextColor)
}

func TestDecodeTheme_HoverAlpha(t *testing.T) {
	theme, err := DecodeTheme(`
hover = "#101010"
hover_alpha = 64
`, GetTheme())
	require.NoError(t, err)

	assert.Equal(t, WithAlpha(HexToColor(0x101010), 64), theme.HoverColor)
}

func TestDecodeTheme_InvalidColor(t *testing.T) {
	base := GetTheme()
	theme, err := DecodeTheme(`background = "white"`, base)

	require.Error(t, err)
	assert.Equal(t, base, theme)
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dark.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
font_path = "/fonts/ui.ttf"
background = "#202020"
item_text = "#EEEEEE"
`), 0o644))

	theme, err := LoadTheme(path, GetTheme())
	require.NoError(t, err)

	assert.Equal(t, "/fonts/ui.ttf", theme.FontPath)
	assert.Equal(t, HexToColor(0x202020), theme.BackgroundColor)
	assert.Equal(t, HexToColor(0xEEEEEE), theme.ItemTextColor)
}

func TestLoadTheme_MissingFile(t *testing.T) {
	_, err := LoadTheme(filepath.Join(t.TempDir(), "missing.toml"), GetTheme())
	require.Error(t, err)
}
