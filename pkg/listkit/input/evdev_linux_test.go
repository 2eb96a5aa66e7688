//go:build linux

package input

import (
	"fmt"
	"testing"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
)

func newTestList(mode constants.SelectionMode, n int) *listkit.List {
	settings := listkit.DefaultListSettings()
	settings.SelectionMode = mode
	l := listkit.New(settings)
	l.Resize(200, 210)
	for i := 0; i < n; i++ {
		l.AddText(fmt.Sprintf("item %d", i))
	}
	return l
}

func keyEvent(code evdev.EvCode, value int32) *evdev.InputEvent {
	return &evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: value}
}

func TestSource_WheelIsPosted(t *testing.T) {
	l := newTestList(constants.SelectionSingle, 20)
	s := newSource("test", l)

	s.handle(&evdev.InputEvent{Type: evdev.EV_REL, Code: evdev.REL_WHEEL, Value: -1})
	s.handle(&evdev.InputEvent{Type: evdev.EV_REL, Code: evdev.REL_WHEEL, Value: -1})
	s.handle(&evdev.InputEvent{Type: evdev.EV_REL, Code: evdev.REL_X, Value: 5})

	assert.Equal(t, 0, l.ScrollOffset(), "nothing applies before Drain")
	assert.Equal(t, 2, l.Drain())
	assert.Equal(t, 2, l.ScrollOffset())
	assert.Equal(t, int64(2), s.Forwarded())
}

func TestSource_KeysAndRepeats(t *testing.T) {
	l := newTestList(constants.SelectionSingle, 20)
	s := newSource("test", l)

	s.handle(keyEvent(evdev.KEY_DOWN, keyPressed))
	s.handle(keyEvent(evdev.KEY_DOWN, keyRepeated))
	s.handle(keyEvent(evdev.KEY_DOWN, keyReleased))
	s.handle(keyEvent(evdev.KEY_A, keyPressed))
	l.Drain()

	assert.Equal(t, 2, l.CurrentIndex())
}

func TestSource_ModifiersAreTracked(t *testing.T) {
	l := newTestList(constants.SelectionMulti, 20)
	l.ClickItem(1, constants.ModNone)
	s := newSource("test", l)

	s.handle(keyEvent(evdev.KEY_LEFTSHIFT, keyPressed))
	s.handle(keyEvent(evdev.KEY_DOWN, keyPressed))
	s.handle(keyEvent(evdev.KEY_DOWN, keyPressed))
	s.handle(keyEvent(evdev.KEY_LEFTSHIFT, keyReleased))
	s.handle(keyEvent(evdev.KEY_DOWN, keyPressed))

	l.Drain()
	assert.Equal(t, []int{4}, l.SelectedIndices())

	s.handle(keyEvent(evdev.KEY_LEFTSHIFT, keyPressed))
	s.handle(keyEvent(evdev.KEY_UP, keyPressed))
	l.Drain()
	assert.Equal(t, []int{3, 4}, l.SelectedIndices())
}

func TestSource_NotRunningUntilRun(t *testing.T) {
	s := newSource("test", newTestList(constants.SelectionSingle, 0))

	assert.False(t, s.Running())
}
