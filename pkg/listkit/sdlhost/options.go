package sdlhost

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions maps to SDL window flags.
type WindowOptions struct {
	Borderless        bool // SDL_WINDOW_BORDERLESS
	Resizable         bool // SDL_WINDOW_RESIZABLE
	Fullscreen        bool // SDL_WINDOW_FULLSCREEN
	FullscreenDesktop bool // SDL_WINDOW_FULLSCREEN_DESKTOP
	AlwaysOnTop       bool // SDL_WINDOW_ALWAYS_ON_TOP
	Maximized         bool // SDL_WINDOW_MAXIMIZED
	Hidden            bool // Omits SDL_WINDOW_SHOWN
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) sdlFlags() uint32 {
	var flags uint32
	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	if wo.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}
	if wo.Maximized {
		flags |= sdl.WINDOW_MAXIMIZED
	}
	return flags
}

// Options configures the SDL host.
type Options struct {
	Title    string
	Width    int32 // 0 uses the display size (or WINDOW_WIDTH in dev mode)
	Height   int32 // 0 uses the display size (or WINDOW_HEIGHT in dev mode)
	Window   WindowOptions
	FontPath string // Overrides the theme's font path
	FontSize int    // Point size for items without one; 0 uses 16
	Margin   int32  // Gap between the window edge and the list
}

const (
	defaultFontSize   = 16
	defaultDevWidth   = 1024
	defaultDevHeight  = 768
	frameBudgetMillis = 16
)
