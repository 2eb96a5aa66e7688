package internal

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
)

// iconPaths holds 24x24 outlines; %s is replaced with the fill attributes.
var iconPaths = map[constants.Icon]string{
	constants.IconCheck:      `<path d="M9 16.2 L4.8 12 L3.4 13.4 L9 19 L21 7 L19.6 5.6 Z" %s/>`,
	constants.IconArrowUp:    `<path d="M12 6 L20 16 L4 16 Z" %s/>`,
	constants.IconArrowDown:  `<path d="M4 8 L20 8 L12 18 Z" %s/>`,
	constants.IconScrollGrip: `<path d="M6 8 L18 8 L18 9.5 L6 9.5 Z M6 11.25 L18 11.25 L18 12.75 L6 12.75 Z M6 14.5 L18 14.5 L18 16 L6 16 Z" %s/>`,
}

// IconSVG returns the SVG document for icon filled with c.
func IconSVG(icon constants.Icon, c color.RGBA) (string, error) {
	path, ok := iconPaths[icon]
	if !ok {
		return "", fmt.Errorf("unknown icon %q", icon)
	}

	fill := fmt.Sprintf(`fill="%s"`, ColorToHex(WithAlpha(c, 255)))
	if c.A != 255 {
		fill += fmt.Sprintf(` fill-opacity="%.3f"`, float64(c.A)/255)
	}

	return `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">` +
		fmt.Sprintf(path, fill) + `</svg>`, nil
}

// RasterizeIcon renders icon into a size x size RGBA image.
func RasterizeIcon(icon constants.Icon, size int, c color.RGBA) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}

	doc, err := IconSVG(icon, c)
	if err != nil {
		return nil, err
	}

	svg, err := oksvg.ReadIconStream(strings.NewReader(doc), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse icon %q: %w", icon, err)
	}
	svg.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	svg.Draw(raster, 1.0)

	return img, nil
}
