package sdlhost

import (
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/internal"
)

// Searched in order when neither the options nor the theme name a font.
var systemFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/noto/NotoSans-Regular.ttf",
	"/usr/share/fonts/noto/NotoSans-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	`C:\Windows\Fonts\segoeui.ttf`,
}

func resolveFontPath(candidates ...string) (string, error) {
	for _, path := range append(candidates, systemFontPaths...) {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no usable font found")
}

type fontKey struct {
	path   string
	size   int
	bold   bool
	italic bool
}

// fontCache opens each (path, size, style) once. Families other than the
// empty default are treated as font file paths.
type fontCache struct {
	defaultPath string
	defaultSize int
	fonts       map[fontKey]*ttf.Font
}

func newFontCache(defaultPath string, defaultSize int) *fontCache {
	return &fontCache{
		defaultPath: defaultPath,
		defaultSize: defaultSize,
		fonts:       make(map[fontKey]*ttf.Font),
	}
}

func (fc *fontCache) keyFor(spec listkit.FontSpec) fontKey {
	key := fontKey{path: spec.Family, size: spec.PointSize, bold: spec.Bold, italic: spec.Italic}
	if key.path == "" {
		key.path = fc.defaultPath
	}
	if key.size <= 0 {
		key.size = fc.defaultSize
	}
	return key
}

func (fc *fontCache) get(spec listkit.FontSpec) (*ttf.Font, error) {
	key := fc.keyFor(spec)
	if font, ok := fc.fonts[key]; ok {
		return font, nil
	}

	font, err := ttf.OpenFont(key.path, key.size)
	if err != nil && key.path != fc.defaultPath {
		internal.GetInternalLogger().Warn("Failed to open font, using default", "path", key.path, "error", err)
		key.path = fc.defaultPath
		font, err = ttf.OpenFont(key.path, key.size)
	}
	if err != nil {
		return nil, listkit.NewInfrastructureError("load_font", err)
	}

	style := ttf.STYLE_NORMAL
	if key.bold {
		style |= ttf.STYLE_BOLD
	}
	if key.italic {
		style |= ttf.STYLE_ITALIC
	}
	font.SetStyle(style)

	fc.fonts[fc.keyFor(spec)] = font
	return font, nil
}

func (fc *fontCache) close() {
	for key, font := range fc.fonts {
		font.Close()
		delete(fc.fonts, key)
	}
}
