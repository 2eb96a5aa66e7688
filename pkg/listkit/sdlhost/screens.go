package sdlhost

import (
	"context"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
)

// Dialog is a centred block of text with a hint line under it.
type Dialog struct {
	Text string
	Hint string
}

// Message shows d until Enter, Space, Escape or a click.
func (h *Host) Message(ctx context.Context, d Dialog) error {
	_, err := h.runDialog(ctx, d, func(sym sdl.Keycode) (bool, bool) {
		switch sym {
		case sdl.K_RETURN, sdl.K_KP_ENTER, sdl.K_SPACE, sdl.K_ESCAPE:
			return true, true
		}
		return false, false
	}, true)
	return err
}

// Confirm asks a yes/no question. Enter or Y confirms, N declines, and
// Escape returns listkit.ErrCancelled.
func (h *Host) Confirm(ctx context.Context, d Dialog) (bool, error) {
	return h.runDialog(ctx, d, func(sym sdl.Keycode) (bool, bool) {
		switch sym {
		case sdl.K_RETURN, sdl.K_KP_ENTER, sdl.K_y:
			return true, true
		case sdl.K_n:
			return false, true
		}
		return false, false
	}, false)
}

func (h *Host) runDialog(ctx context.Context, d Dialog, decide func(sdl.Keycode) (answer, done bool), clickCloses bool) (bool, error) {
	h.redraw.Store(true)
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		for event := sdl.WaitEventTimeout(frameBudgetMillis); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return false, listkit.ErrCancelled
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
					continue
				}
				if answer, done := decide(e.Keysym.Sym); done {
					return answer, nil
				}
				if e.Keysym.Sym == sdl.K_ESCAPE {
					return false, listkit.ErrCancelled
				}
			case *sdl.MouseButtonEvent:
				if clickCloses && e.Type == sdl.MOUSEBUTTONDOWN {
					return true, nil
				}
			case *sdl.WindowEvent:
				h.redraw.Store(true)
			}
		}

		if h.redraw.CompareAndSwap(true, false) {
			h.renderDialog(d)
		}
	}
}

func (h *Host) renderDialog(d Dialog) {
	h.clear(h.theme)

	w, ht := h.window.Size()
	lineH := h.footerHeight()
	area := sdl.Rect{X: 0, Y: ht/2 - lineH, W: w, H: 2 * lineH}

	h.canvas.begin(area, listkit.Rect{})
	h.canvas.FillRect(listkit.Rect{W: int(area.W), H: int(lineH)}, h.theme.SelectionBackgroundColor)
	h.canvas.DrawText(listkit.Rect{W: int(area.W), H: int(lineH)}, d.Text, listkit.FontSpec{}, h.theme.SelectionTextColor, constants.TextAlignCenter)
	if d.Hint != "" {
		hint := listkit.Rect{Y: int(lineH), W: int(area.W), H: int(lineH)}
		h.canvas.DrawText(hint, d.Hint, listkit.FontSpec{}, h.theme.ItemTextColor, constants.TextAlignCenter)
	}
	h.canvas.end()

	h.window.Present()
}
