package listkit

import "github.com/BrandonKowalski/listkit/pkg/listkit/constants"

// IndexAt maps a point in widget coordinates to a row index. Points in the
// scrollbar strip, outside the widget, or below the last row return NoIndex.
// A point in the spacing under a row belongs to that row.
func (l *List) IndexAt(p Point) int {
	if p.X < 0 || p.Y < 0 || p.X >= l.vp.width-l.scrollbarWidth || p.Y >= l.vp.height {
		return NoIndex
	}

	index := l.vp.offset + p.Y/l.vp.stride()
	if !l.store.valid(index) {
		return NoIndex
	}
	return index
}

// MousePress handles a primary-button press. A press on a row is a click;
// a press in the scrollbar strip pages the scrollbar toward the pointer
// when the scroll range supports it.
func (l *List) MousePress(p Point, mods constants.Modifier) {
	if strip := l.ScrollbarRect(); strip.Contains(p) {
		if pg, ok := l.scroll.(pager); ok {
			pg.PageToward(p.Y, strip)
		}
		return
	}

	if index := l.IndexAt(p); index != NoIndex {
		l.ClickItem(index, mods)
	}
}

// MouseDoubleClick handles a primary-button double click.
func (l *List) MouseDoubleClick(p Point) {
	if index := l.IndexAt(p); index != NoIndex {
		l.events.itemDoubleClicked(index)
	}
}

// MouseMove tracks the hovered row. Only the rows entering and leaving
// hover are repainted.
func (l *List) MouseMove(p Point) {
	l.pointer, l.pointerInside = p, true
	l.setHover(l.IndexAt(p))
}

// MouseLeave clears the hovered row when the pointer exits the widget.
func (l *List) MouseLeave() {
	l.pointerInside = false
	l.setHover(NoIndex)
}

// syncHover re-resolves the row under the last pointer position after the
// rows moved beneath it. Callers repaint the whole viewport.
func (l *List) syncHover() {
	if !l.pointerInside {
		l.hover = NoIndex
		return
	}
	l.hover = l.IndexAt(l.pointer)
}

func (l *List) setHover(index int) {
	if index == l.hover {
		return
	}
	previous := l.hover
	l.hover = index
	l.repaintRow(previous)
	l.repaintRow(index)
}
