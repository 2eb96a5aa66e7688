package sdlhost

import (
	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
)

const (
	statusPadding = 8
	gripSize      = 12
)

// paintScrollbar draws the list's built-in Scrollbar into its strip.
// Lists driving a host-supplied ScrollRange paint nothing here.
func paintScrollbar(c listkit.IconCanvas, l *listkit.List) {
	bar, ok := l.ScrollBar().(*listkit.Scrollbar)
	if !ok || !bar.Visible() {
		return
	}

	theme := l.Theme()
	track := l.ScrollbarRect()
	c.FillRect(track, theme.ScrollbarTrackColor)

	thumb := bar.ThumbRect(track).Inset(2, 0, 2, 0)
	c.FillRect(thumb, theme.ScrollbarThumbColor)

	if thumb.H >= 2*gripSize && thumb.W >= gripSize {
		grip := listkit.Rect{
			X: thumb.X + (thumb.W-gripSize)/2,
			Y: thumb.Y + (thumb.H-gripSize)/2,
			W: gripSize,
			H: gripSize,
		}
		c.DrawIcon(grip, constants.IconScrollGrip, theme.ScrollbarTrackColor)
	}
}
