package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestKeyRepeat_DelayThenInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	r := NewKeyRepeatWithTiming(300*time.Millisecond, 50*time.Millisecond)
	r.SetClock(clock.now)

	assert.True(t, r.SetHeld(constants.KeyDown, constants.ModShift, true))

	clock.advance(299 * time.Millisecond)
	key, _ := r.Update()
	assert.Equal(t, constants.KeyUnassigned, key, "no repeat before the initial delay")

	clock.advance(time.Millisecond)
	key, mods := r.Update()
	assert.Equal(t, constants.KeyDown, key)
	assert.Equal(t, constants.ModShift, mods)

	clock.advance(49 * time.Millisecond)
	key, _ = r.Update()
	assert.Equal(t, constants.KeyUnassigned, key)

	clock.advance(time.Millisecond)
	key, _ = r.Update()
	assert.Equal(t, constants.KeyDown, key)
}

func TestKeyRepeat_ReleaseStopsRepeat(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	r := NewKeyRepeat()
	r.SetClock(clock.now)

	r.SetHeld(constants.KeyUp, constants.ModNone, true)
	r.SetHeld(constants.KeyUp, constants.ModNone, false)
	clock.advance(time.Second)

	key, _ := r.Update()
	assert.Equal(t, constants.KeyUnassigned, key)
	assert.False(t, r.IsHeld())
}

func TestKeyRepeat_IgnoresNonRepeatingKeys(t *testing.T) {
	r := NewKeyRepeat()
	assert.False(t, r.SetHeld(constants.KeySpace, constants.ModNone, true))
	assert.False(t, r.IsHeld())
}

func TestKeyRepeat_Priority(t *testing.T) {
	r := NewKeyRepeat()
	r.SetHeld(constants.KeyPageDown, constants.ModNone, true)
	r.SetHeld(constants.KeyUp, constants.ModNone, true)
	assert.Equal(t, constants.KeyUp, r.HeldKey())

	r.Reset()
	assert.Equal(t, constants.KeyUnassigned, r.HeldKey())
}
