//go:build linux

package input

import (
	"context"
	"errors"
	"log/slog"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/BrandonKowalski/listkit/pkg/listkit/internal"
)

const (
	keyReleased = 0
	keyPressed  = 1
	keyRepeated = 2
)

// Source forwards one evdev device to a list.
type Source struct {
	path    string
	dev     *evdev.InputDevice
	list    *listkit.List
	mods    constants.Modifier
	running atomic.Bool
	events  atomic.Int64
	log     *slog.Logger
}

// Open opens the device at path, for example /dev/input/event3.
func Open(path string, l *listkit.List) (*Source, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, listkit.NewInfrastructureError("open_input_device", err)
	}

	s := newSource(path, l)
	s.dev = dev
	if name, err := dev.Name(); err == nil {
		s.log.Debug("Opened input device", "path", path, "name", name)
	}
	return s, nil
}

func newSource(path string, l *listkit.List) *Source {
	return &Source{
		path: path,
		list: l,
		log:  internal.GetInternalLogger().With("device", path),
	}
}

// Run reads events until ctx is done or the device fails. It closes the
// device before returning.
func (s *Source) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return errors.New("input source already running")
	}
	defer s.running.Store(false)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			s.dev.Close()
		case <-stop:
		}
	}()

	for {
		ev, err := s.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.dev.Close()
			return listkit.NewInfrastructureError("read_input_device", err)
		}
		s.handle(ev)
	}
}

// Running reports whether Run is reading.
func (s *Source) Running() bool {
	return s.running.Load()
}

// Forwarded counts events posted to the list.
func (s *Source) Forwarded() int64 {
	return s.events.Load()
}

// Close closes the device. Run returns shortly after.
func (s *Source) Close() error {
	return s.dev.Close()
}

func (s *Source) handle(ev *evdev.InputEvent) {
	switch ev.Type {
	case evdev.EV_REL:
		if ev.Code == evdev.REL_WHEEL && ev.Value != 0 {
			delta := int(ev.Value)
			s.post(func(l *listkit.List) { l.Wheel(delta) })
		}

	case evdev.EV_KEY:
		if mod := modifierFor(ev.Code); mod != constants.ModNone {
			if ev.Value == keyReleased {
				s.mods &^= mod
			} else {
				s.mods |= mod
			}
			return
		}

		if ev.Value != keyPressed && ev.Value != keyRepeated {
			return
		}
		key := keyFor(ev.Code)
		if key == constants.KeyUnassigned {
			return
		}
		mods := s.mods
		s.post(func(l *listkit.List) { l.KeyPress(key, mods) })
	}
}

func (s *Source) post(fn func(*listkit.List)) {
	s.events.Inc()
	s.list.Post(fn)
}

func modifierFor(code evdev.EvCode) constants.Modifier {
	switch code {
	case evdev.KEY_LEFTCTRL, evdev.KEY_RIGHTCTRL:
		return constants.ModCtrl
	case evdev.KEY_LEFTSHIFT, evdev.KEY_RIGHTSHIFT:
		return constants.ModShift
	case evdev.KEY_LEFTALT, evdev.KEY_RIGHTALT:
		return constants.ModAlt
	}
	return constants.ModNone
}

func keyFor(code evdev.EvCode) constants.Key {
	switch code {
	case evdev.KEY_UP:
		return constants.KeyUp
	case evdev.KEY_DOWN:
		return constants.KeyDown
	case evdev.KEY_PAGEUP:
		return constants.KeyPageUp
	case evdev.KEY_PAGEDOWN:
		return constants.KeyPageDown
	case evdev.KEY_HOME:
		return constants.KeyHome
	case evdev.KEY_END:
		return constants.KeyEnd
	case evdev.KEY_SPACE:
		return constants.KeySpace
	case evdev.KEY_ENTER, evdev.KEY_KPENTER:
		return constants.KeyEnter
	}
	return constants.KeyUnassigned
}
