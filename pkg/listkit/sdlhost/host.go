// Package sdlhost runs listkit lists in an SDL2 window.
//
// The host owns the window, translates SDL input into List entry points,
// drains each list's mailbox once per frame and repaints when the list
// asks for it. Screens block until the user leaves them, which makes them
// easy to drive from the router package.
package sdlhost

import (
	"context"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/BrandonKowalski/listkit/pkg/listkit/internal"
)

// Host is an initialised SDL window that can show list screens.
type Host struct {
	window *Window
	fonts  *fontCache
	canvas *Canvas
	theme  internal.Theme
	margin int32
	repeat internal.KeyRepeat

	redraw    atomic.Bool
	observed  map[*listkit.List]bool
	active    *listkit.List
	activated int

	log *slog.Logger
}

// Init starts SDL and opens the window. Call Close when done.
func Init(opts Options) (*Host, error) {
	log := internal.GetInternalLogger()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, listkit.NewInfrastructureError("sdl_init", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, listkit.NewInfrastructureError("ttf_init", err)
	}

	if opts.Window.IsZero() {
		if constants.IsDevMode() {
			opts.Window = WindowOptions{Resizable: true}
		} else {
			opts.Window = WindowOptions{Borderless: true, Resizable: true}
		}
	}
	if opts.FontSize <= 0 {
		opts.FontSize = defaultFontSize
	}

	theme := listkit.DefaultTheme()
	fontPath, err := resolveFontPath(opts.FontPath, theme.FontPath)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return nil, listkit.NewInfrastructureError("load_font", err)
	}
	log.Debug("Using font", "path", fontPath, "size", opts.FontSize)

	window, err := newWindow(opts)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return nil, err
	}

	fonts := newFontCache(fontPath, opts.FontSize)
	h := &Host{
		window:    window,
		fonts:     fonts,
		canvas:    newCanvas(window.Renderer, fonts),
		theme:     theme,
		margin:    opts.Margin,
		repeat:    internal.NewKeyRepeat(),
		observed:  make(map[*listkit.List]bool),
		activated: listkit.NoIndex,
		log:       log,
	}
	h.redraw.Store(true)
	return h, nil
}

// Close releases every SDL resource the host created.
func (h *Host) Close() {
	h.canvas.destroy()
	h.fonts.close()
	h.window.destroy()
	ttf.Quit()
	sdl.Quit()
}

// Window exposes the underlying window.
func (h *Host) Window() *Window {
	return h.window
}

// RequestRedraw marks the screen dirty. It is safe from any goroutine.
func (h *Host) RequestRedraw() {
	h.redraw.Store(true)
}

// ListScreen describes a blocking list screen.
type ListScreen struct {
	List *listkit.List
	// Status returns the footer text, drawn under the list. nil hides the footer.
	Status func() string
	// Actions end the screen when their key is pressed, reporting the
	// mapped action name.
	Actions map[sdl.Keycode]string
	// Activate is reported when a row is double-clicked or activated with
	// Enter. Empty keeps the screen open.
	Activate string
}

// ListResult is how a list screen ended.
type ListResult struct {
	Action string
	Index  int // The activated row, or the current index for key actions
}

// RunList shows screen.List until an action fires. Escape and closing the
// window return listkit.ErrCancelled.
func (h *Host) RunList(ctx context.Context, screen ListScreen) (ListResult, error) {
	l := screen.List
	h.observe(l)
	h.active, h.activated = l, listkit.NoIndex
	defer func() {
		h.active = nil
		h.repeat.Reset()
	}()

	in := &listInput{list: l, repeat: &h.repeat}
	h.layout(in, screen.Status != nil)
	h.redraw.Store(true)

	for {
		if err := ctx.Err(); err != nil {
			return ListResult{}, err
		}

		for event := sdl.WaitEventTimeout(frameBudgetMillis); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return ListResult{}, listkit.ErrCancelled
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
					if e.Keysym.Sym == sdl.K_ESCAPE {
						return ListResult{}, listkit.ErrCancelled
					}
					if action, ok := screen.Actions[e.Keysym.Sym]; ok {
						return ListResult{Action: action, Index: l.CurrentIndex()}, nil
					}
				}
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED || e.Event == sdl.WINDOWEVENT_EXPOSED {
					h.layout(in, screen.Status != nil)
					h.redraw.Store(true)
				}
			}
			in.handle(event)
		}

		in.tick()
		if l.Drain() > 0 && screen.Status != nil {
			h.redraw.Store(true)
		}

		if h.activated != listkit.NoIndex && screen.Activate != "" {
			return ListResult{Action: screen.Activate, Index: h.activated}, nil
		}
		h.activated = listkit.NoIndex

		if h.redraw.CompareAndSwap(true, false) {
			h.renderList(in, screen)
		}
	}
}

func (h *Host) observe(l *listkit.List) {
	if h.observed[l] {
		return
	}
	h.observed[l] = true
	l.OnRepaint(func(listkit.Rect) { h.redraw.Store(true) })
	l.OnItemDoubleClicked(func(index int) {
		if h.active == l {
			h.activated = index
		}
	})
}

func (h *Host) footerHeight() int32 {
	font, err := h.fonts.get(listkit.FontSpec{})
	if err != nil {
		return 0
	}
	return int32(font.Height()) + 2*statusPadding
}

// layout places the list inside the window and resizes it.
func (h *Host) layout(in *listInput, footer bool) {
	w, ht := h.window.Size()
	bounds := sdl.Rect{X: h.margin, Y: h.margin, W: w - 2*h.margin, H: ht - 2*h.margin}
	if footer {
		bounds.H -= h.footerHeight()
	}
	bounds.W, bounds.H = max(0, bounds.W), max(0, bounds.H)
	in.bounds = bounds
	in.list.Resize(int(bounds.W), int(bounds.H))
}

func (h *Host) clear(theme listkit.Theme) {
	bg := theme.BackgroundColor
	h.window.Renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
	h.window.Renderer.Clear()
}

func (h *Host) renderList(in *listInput, screen ListScreen) {
	l := screen.List
	theme := l.Theme()
	h.clear(theme)

	h.canvas.begin(in.bounds, listkit.Rect{})
	l.Paint(h.canvas, listkit.Rect{})
	paintScrollbar(h.canvas, l)
	h.canvas.end()

	if screen.Status != nil {
		w, ht := h.window.Size()
		footer := sdl.Rect{X: h.margin, Y: in.bounds.Y + in.bounds.H, W: w - 2*h.margin, H: ht - h.margin - (in.bounds.Y + in.bounds.H)}
		h.canvas.begin(footer, listkit.Rect{})
		text := listkit.Rect{X: statusPadding, W: int(footer.W) - 2*statusPadding, H: int(footer.H)}
		h.canvas.DrawText(text, screen.Status(), listkit.FontSpec{}, theme.ItemTextColor, constants.TextAlignLeft)
		h.canvas.end()
	}

	h.window.Present()
}
