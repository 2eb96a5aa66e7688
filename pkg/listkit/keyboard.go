package listkit

import "github.com/BrandonKowalski/listkit/pkg/listkit/constants"

// KeyPress handles a navigation key and reports whether the key was used.
//
// Up and Down move the current row by one, PageUp and PageDown by a page,
// Home and End to the ends. In Multi mode a plain move selects only the
// new row, shift extends the selection to it, ctrl moves focus without
// touching the selection, and Space toggles the current row. Enter
// activates the current row like a double click. In None mode the keys
// scroll the viewport instead.
func (l *List) KeyPress(key constants.Key, mods constants.Modifier) bool {
	if l.store.len() == 0 {
		return false
	}

	if l.sel.mode == constants.SelectionNone {
		return l.scrollKey(key)
	}

	switch key {
	case constants.KeySpace:
		if l.sel.mode != constants.SelectionMulti || l.sel.current == NoIndex {
			return false
		}
		l.sel.toggle(l.sel.current)
		l.events.itemSelectionChanged()
		l.repaintRow(l.sel.current)
		return true
	case constants.KeyEnter:
		if l.sel.current == NoIndex {
			return false
		}
		l.events.itemDoubleClicked(l.sel.current)
		return true
	}

	target, ok := l.navigationTarget(key)
	if !ok {
		return false
	}

	if l.sel.mode == constants.SelectionMulti && !mods.Has(constants.ModCtrl) {
		l.sel.applyClick(target, mods&constants.ModShift)
		l.SetCurrentIndex(target)
		l.events.itemSelectionChanged()
		l.repaintAll()
		return true
	}

	l.SetCurrentIndex(target)
	l.ScrollToItem(target)
	return true
}

func (l *List) navigationTarget(key constants.Key) (int, bool) {
	last := l.store.len() - 1
	current := l.sel.current
	page := max(1, l.vp.pageStep())

	var target int
	switch key {
	case constants.KeyUp:
		target = current - 1
	case constants.KeyDown:
		target = current + 1
	case constants.KeyPageUp:
		target = current - page
	case constants.KeyPageDown:
		target = current + page
	case constants.KeyHome:
		target = 0
	case constants.KeyEnd:
		target = last
	default:
		return NoIndex, false
	}

	if current == NoIndex && (key == constants.KeyUp || key == constants.KeyDown ||
		key == constants.KeyPageUp || key == constants.KeyPageDown) {
		target = 0
	}
	return max(0, min(target, last)), true
}

func (l *List) scrollKey(key constants.Key) bool {
	page := max(1, l.vp.pageStep())
	switch key {
	case constants.KeyUp:
		l.ScrollUp()
	case constants.KeyDown:
		l.ScrollDown()
	case constants.KeyPageUp:
		l.setOffset(l.vp.offset - page)
	case constants.KeyPageDown:
		l.setOffset(l.vp.offset + page)
	case constants.KeyHome:
		l.ScrollToTop()
	case constants.KeyEnd:
		l.ScrollToBottom()
	default:
		return false
	}
	return true
}
