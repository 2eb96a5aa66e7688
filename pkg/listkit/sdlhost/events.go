package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/BrandonKowalski/listkit/pkg/listkit/internal"
)

func translateKey(sym sdl.Keycode) constants.Key {
	switch sym {
	case sdl.K_UP:
		return constants.KeyUp
	case sdl.K_DOWN:
		return constants.KeyDown
	case sdl.K_PAGEUP:
		return constants.KeyPageUp
	case sdl.K_PAGEDOWN:
		return constants.KeyPageDown
	case sdl.K_HOME:
		return constants.KeyHome
	case sdl.K_END:
		return constants.KeyEnd
	case sdl.K_SPACE:
		return constants.KeySpace
	case sdl.K_RETURN, sdl.K_KP_ENTER:
		return constants.KeyEnter
	default:
		return constants.KeyUnassigned
	}
}

func translateMods(mod uint16) constants.Modifier {
	m := uint32(mod)
	mods := constants.ModNone
	if m&uint32(sdl.KMOD_CTRL) != 0 || m&uint32(sdl.KMOD_GUI) != 0 {
		mods |= constants.ModCtrl
	}
	if m&uint32(sdl.KMOD_SHIFT) != 0 {
		mods |= constants.ModShift
	}
	if m&uint32(sdl.KMOD_ALT) != 0 {
		mods |= constants.ModAlt
	}
	return mods
}

// listInput forwards SDL events that land on a list to its entry points.
type listInput struct {
	list   *listkit.List
	bounds sdl.Rect
	repeat *internal.KeyRepeat
}

func (in *listInput) local(x, y int32) listkit.Point {
	return listkit.Point{X: int(x - in.bounds.X), Y: int(y - in.bounds.Y)}
}

// handle reports whether the event was consumed.
func (in *listInput) handle(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT || e.Type != sdl.MOUSEBUTTONDOWN {
			return false
		}
		p := in.local(e.X, e.Y)
		if e.Clicks >= 2 {
			in.list.MouseDoubleClick(p)
			return true
		}
		in.list.MousePress(p, translateMods(uint16(sdl.GetModState())))
		return true

	case *sdl.MouseMotionEvent:
		p := in.local(e.X, e.Y)
		if in.list.Bounds().Contains(p) {
			in.list.MouseMove(p)
		} else {
			in.list.MouseLeave()
		}
		return true

	case *sdl.MouseWheelEvent:
		y := e.Y
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			y = -y
		}
		in.list.Wheel(int(y))
		return true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_LEAVE {
			in.list.MouseLeave()
			return true
		}
		return false

	case *sdl.KeyboardEvent:
		key := translateKey(e.Keysym.Sym)
		if key == constants.KeyUnassigned {
			return false
		}
		mods := translateMods(e.Keysym.Mod)
		if e.Type == sdl.KEYUP {
			in.repeat.SetHeld(key, mods, false)
			return true
		}
		if e.Repeat != 0 {
			// SDL's own auto-repeat is replaced by KeyRepeat timing.
			return true
		}
		in.repeat.SetHeld(key, mods, true)
		return in.list.KeyPress(key, mods)
	}
	return false
}

// tick fires held-key repeats.
func (in *listInput) tick() {
	if key, mods := in.repeat.Update(); key != constants.KeyUnassigned {
		in.list.KeyPress(key, mods)
	}
}
