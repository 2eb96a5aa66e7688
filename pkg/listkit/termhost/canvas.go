package termhost

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/BrandonKowalski/listkit/pkg/listkit/internal"
)

// cell is one terminal character. A wide rune occupies its cell and marks
// the next one as a continuation.
type cell struct {
	r            rune
	fg, bg       color.RGBA
	bold, italic bool
	cont         bool
}

// CellCanvas is a listkit canvas over a grid of terminal cells, one cell
// per pixel. Translucent fills tint the background and keep the text.
type CellCanvas struct {
	width, height int
	cells         []cell
	background    color.RGBA
}

var _ listkit.IconCanvas = (*CellCanvas)(nil)

func NewCellCanvas(width, height int, background color.RGBA) *CellCanvas {
	c := &CellCanvas{background: background}
	c.Resize(width, height)
	return c
}

// Resize reallocates the grid and clears it.
func (c *CellCanvas) Resize(width, height int) {
	c.width, c.height = max(0, width), max(0, height)
	c.cells = make([]cell, c.width*c.height)
	c.Clear()
}

func (c *CellCanvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', bg: c.background}
	}
}

func (c *CellCanvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return nil
	}
	return &c.cells[y*c.width+x]
}

func (c *CellCanvas) bounds() listkit.Rect {
	return listkit.Rect{W: c.width, H: c.height}
}

func (c *CellCanvas) FillRect(r listkit.Rect, col color.RGBA) {
	r = r.Intersect(c.bounds())
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			cl := c.at(x, y)
			if col.A == 255 {
				*cl = cell{r: ' ', bg: col}
				continue
			}
			cl.bg = internal.Blend(cl.bg, col)
		}
	}
}

func (c *CellCanvas) MeasureText(text string, _ listkit.FontSpec) (int, int) {
	return lipgloss.Width(text), 1
}

func (c *CellCanvas) DrawText(r listkit.Rect, text string, font listkit.FontSpec, col color.RGBA, align constants.TextAlign) {
	r = r.Intersect(c.bounds())
	if r.Empty() {
		return
	}

	width := lipgloss.Width(text)
	x := r.X
	switch align {
	case constants.TextAlignCenter:
		x += (r.W - width) / 2
	case constants.TextAlignRight:
		x += r.W - width
	}
	y := r.Y + (r.H-1)/2

	for _, ch := range text {
		w := lipgloss.Width(string(ch))
		if w == 0 {
			continue
		}
		if x >= r.X && x+w <= r.X+r.W {
			cl := c.at(x, y)
			cl.r, cl.fg, cl.bold, cl.italic, cl.cont = ch, col, font.Bold, font.Italic, false
			for i := 1; i < w; i++ {
				next := c.at(x+i, y)
				next.cont = true
				next.bg = cl.bg
			}
		}
		x += w
	}
}

func (c *CellCanvas) DrawIcon(r listkit.Rect, icon constants.Icon, col color.RGBA) {
	glyph := constants.CheckGlyph
	switch icon {
	case constants.IconArrowUp:
		glyph = constants.ArrowUpGlyph
	case constants.IconArrowDown:
		glyph = constants.ArrowDownGlyph
	case constants.IconScrollGrip:
		glyph = constants.ThumbGlyph
	}
	c.DrawText(r, glyph, listkit.FontSpec{}, col, constants.TextAlignCenter)
}

// RuneAt returns the character at x, y, or 0 outside the grid.
func (c *CellCanvas) RuneAt(x, y int) rune {
	if cl := c.at(x, y); cl != nil {
		return cl.r
	}
	return 0
}

// BackgroundAt returns the background colour at x, y.
func (c *CellCanvas) BackgroundAt(x, y int) color.RGBA {
	if cl := c.at(x, y); cl != nil {
		return cl.bg
	}
	return color.RGBA{}
}

// Line returns row y as plain text without styling.
func (c *CellCanvas) Line(y int) string {
	var sb strings.Builder
	for x := 0; x < c.width; x++ {
		if cl := c.at(x, y); !cl.cont {
			sb.WriteRune(cl.r)
		}
	}
	return sb.String()
}

// Render returns the grid as styled terminal lines. Runs of cells that
// share a style are rendered together.
func (c *CellCanvas) Render() string {
	lines := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var line, run strings.Builder
		var style *cell
		flush := func() {
			if style == nil || run.Len() == 0 {
				return
			}
			line.WriteString(styleFor(*style).Render(run.String()))
			run.Reset()
		}

		for x := 0; x < c.width; x++ {
			cl := c.at(x, y)
			if cl.cont {
				continue
			}
			if style == nil || !sameStyle(*style, *cl) {
				flush()
				style = cl
			}
			run.WriteRune(cl.r)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.bold == b.bold && a.italic == b.italic
}

func styleFor(cl cell) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(internal.ColorToHex(internal.WithAlpha(cl.fg, 255)))).
		Background(lipgloss.Color(internal.ColorToHex(internal.WithAlpha(cl.bg, 255)))).
		Bold(cl.bold).
		Italic(cl.italic)
}
