package internal

import (
	"time"

	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
)

// KeyRepeat tracks held navigation keys and produces repeat events.
// Hosts embed it next to a list so holding an arrow keeps moving the
// current index the same way on every platform.
type KeyRepeat struct {
	held struct {
		up, down, pageUp, pageDown bool
	}
	mods           constants.Modifier
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewKeyRepeat creates a KeyRepeat with default timing.
// Default delay is 300ms before first repeat, then 50ms between repeats.
func NewKeyRepeat() KeyRepeat {
	return NewKeyRepeatWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewKeyRepeatWithTiming creates a KeyRepeat with custom timing.
func NewKeyRepeatWithTiming(delay, interval time.Duration) KeyRepeat {
	return KeyRepeat{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
		now:            time.Now,
	}
}

// SetClock replaces the time source.
func (r *KeyRepeat) SetClock(now func() time.Time) {
	r.now = now
	r.lastRepeatTime = now()
}

// SetHeld updates the held state for a key.
// Returns true if the key repeats while held.
func (r *KeyRepeat) SetHeld(key constants.Key, mods constants.Modifier, held bool) bool {
	var slot *bool
	switch key {
	case constants.KeyUp:
		slot = &r.held.up
	case constants.KeyDown:
		slot = &r.held.down
	case constants.KeyPageUp:
		slot = &r.held.pageUp
	case constants.KeyPageDown:
		slot = &r.held.pageDown
	default:
		return false
	}

	*slot = held
	if held {
		r.mods = mods
		r.lastRepeatTime = r.now()
	}
	r.hasRepeated = false
	return true
}

// IsHeld returns true if any repeating key is currently held.
func (r *KeyRepeat) IsHeld() bool {
	return r.held.up || r.held.down || r.held.pageUp || r.held.pageDown
}

// HeldKey returns the currently held key.
// If multiple keys are held, priority is: up, down, page up, page down.
func (r *KeyRepeat) HeldKey() constants.Key {
	switch {
	case r.held.up:
		return constants.KeyUp
	case r.held.down:
		return constants.KeyDown
	case r.held.pageUp:
		return constants.KeyPageUp
	case r.held.pageDown:
		return constants.KeyPageDown
	}
	return constants.KeyUnassigned
}

// Update checks if a repeat event should fire. Call it every frame.
// It returns the key to process with the modifiers captured on press,
// or KeyUnassigned when no repeat is due.
//
// The first repeat occurs after repeatDelay, subsequent repeats after repeatInterval.
func (r *KeyRepeat) Update() (constants.Key, constants.Modifier) {
	if !r.IsHeld() {
		r.lastRepeatTime = r.now()
		r.hasRepeated = false
		return constants.KeyUnassigned, constants.ModNone
	}

	threshold := r.repeatInterval
	if !r.hasRepeated {
		threshold = r.repeatDelay
	}

	if r.now().Sub(r.lastRepeatTime) >= threshold {
		r.lastRepeatTime = r.now()
		r.hasRepeated = true
		return r.HeldKey(), r.mods
	}

	return constants.KeyUnassigned, constants.ModNone
}

// Reset clears all held keys and timing state.
func (r *KeyRepeat) Reset() {
	r.held.up = false
	r.held.down = false
	r.held.pageUp = false
	r.held.pageDown = false
	r.mods = constants.ModNone
	r.hasRepeated = false
	r.lastRepeatTime = r.now()
}
