package listkit

import (
	"image/color"

	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
)

// Canvas is the drawing surface a host lends the list while painting.
//
// FillRect blends c over the existing pixels using c's alpha. DrawText
// draws a single line vertically centred in r and clipped to it.
// MeasureText returns the size DrawText would use for text.
type Canvas interface {
	FillRect(r Rect, c color.RGBA)
	DrawText(r Rect, text string, font FontSpec, c color.RGBA, align constants.TextAlign)
	MeasureText(text string, font FontSpec) (width, height int)
}

// IconCanvas is a Canvas that can also draw named icons.
type IconCanvas interface {
	Canvas
	DrawIcon(r Rect, icon constants.Icon, c color.RGBA)
}

const ellipsis = "..."

// Paint draws the rows that intersect clip. An empty clip paints the whole
// widget. Paint reads state only; it never changes the list.
func (l *List) Paint(c Canvas, clip Rect) {
	bounds := l.Bounds()
	if clip.Empty() {
		clip = bounds
	} else {
		clip = clip.Intersect(bounds)
	}
	if clip.Empty() {
		return
	}

	c.FillRect(clip, l.theme.BackgroundColor)

	visible := l.VisibleItemRange()
	if visible.Empty() {
		return
	}

	for i := visible.First; i <= visible.Last; i++ {
		r, _ := l.ItemRect(i)
		if !r.Intersects(clip) {
			continue
		}
		l.drawItem(c, r, i)
	}
}

func (l *List) drawItem(c Canvas, r Rect, index int) {
	item := l.store.at(index)
	selected := l.sel.isSelected(index)

	bg, fg := item.BackgroundColor, item.TextColor
	if selected {
		bg, fg = l.theme.SelectionBackgroundColor, l.theme.SelectionTextColor
	}
	c.FillRect(r, bg)

	textRect := r.Inset(l.padding.Left, l.padding.Top, l.padding.Right, l.padding.Bottom)

	if ic, ok := c.(IconCanvas); ok && selected && l.selectionMarks && l.sel.mode == constants.SelectionMulti {
		size := min(r.H, textRect.H, 16)
		if size > 0 && textRect.W > size {
			icon := Rect{X: textRect.X + textRect.W - size, Y: r.Y + (r.H-size)/2, W: size, H: size}
			ic.DrawIcon(icon, constants.IconCheck, fg)
			textRect.W -= size + l.padding.Right
		}
	}

	if text := truncateText(c, item.Text, item.Font, textRect.W); text != "" && textRect.W > 0 {
		c.DrawText(textRect, text, item.Font, fg, constants.TextAlignLeft)
	}

	if index == l.hover && !selected {
		c.FillRect(r, l.theme.HoverColor)
	}
}

// truncateText keeps the longest prefix of text that fits maxWidth with an
// ellipsis appended. Prefix widths grow with length, so the cut point is
// found by binary search.
func truncateText(c Canvas, text string, font FontSpec, maxWidth int) string {
	if w, _ := c.MeasureText(text, font); w <= maxWidth {
		return text
	}

	runes := []rune(text)
	best := 0
	lo, hi := 1, len(runes)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if w, _ := c.MeasureText(string(runes[:mid])+ellipsis, font); w <= maxWidth {
			best, lo = mid, mid+1
		} else {
			hi = mid - 1
		}
	}
	if best == 0 {
		return ellipsis
	}
	return string(runes[:best]) + ellipsis
}
