// Package input feeds raw Linux input devices into a list.
//
// A Source reads one evdev device on its own goroutine and forwards wheel
// motion and navigation keys through the list's mailbox, so the host's UI
// loop applies them on its next Drain. It is useful on handhelds and kiosks
// where the windowing layer does not deliver every device.
package input
