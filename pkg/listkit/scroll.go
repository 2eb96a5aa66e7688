package listkit

// ScrollOffset returns the index of the first row at the top edge.
func (l *List) ScrollOffset() int {
	return l.vp.offset
}

// MaxScroll returns the largest scroll offset for the current content and
// viewport.
func (l *List) MaxScroll() int {
	return l.vp.maxScroll(l.store.len())
}

// PageStep returns the number of rows that fit entirely in the viewport.
func (l *List) PageStep() int {
	return l.vp.pageStep()
}

// ScrollBar returns the scroll range the list drives.
func (l *List) ScrollBar() ScrollRange {
	return l.scroll
}

// VisibleItemRange returns the rows that intersect the viewport. The range
// is empty when there are no rows or the viewport has no height.
func (l *List) VisibleItemRange() Range {
	return l.vp.visibleRange(l.store.len())
}

// ScrollToItem brings the row at index into view with the least movement:
// rows above the viewport align to the top edge, rows below align to the
// bottom edge. Rows already visible do not scroll.
func (l *List) ScrollToItem(index int) {
	if !l.store.valid(index) || l.vp.height <= 0 {
		return
	}

	visible := l.VisibleItemRange()
	if visible.Contains(index) {
		return
	}

	if index < visible.First || visible.Empty() {
		l.setOffset(index)
		return
	}
	l.setOffset(index - max(1, l.vp.pageStep()) + 1)
}

// ScrollUp moves the viewport up by one row.
func (l *List) ScrollUp() {
	l.setOffset(l.vp.offset - 1)
}

// ScrollDown moves the viewport down by one row.
func (l *List) ScrollDown() {
	l.setOffset(l.vp.offset + 1)
}

// ScrollToTop shows the first row at the top edge.
func (l *List) ScrollToTop() {
	l.setOffset(0)
}

// ScrollToBottom scrolls as far down as the content allows.
func (l *List) ScrollToBottom() {
	l.setOffset(l.MaxScroll())
}

// Wheel scrolls one row per notch: positive deltas scroll up, negative
// deltas scroll down.
func (l *List) Wheel(deltaY int) {
	switch {
	case deltaY > 0:
		l.ScrollUp()
	case deltaY < 0:
		l.ScrollDown()
	}
}

// setOffset clamps offset into [0, MaxScroll] and pushes it to the
// scrollbar. The scrollbar's change callback sees the offset already
// applied and does nothing further.
func (l *List) setOffset(offset int) {
	offset = l.vp.clampOffset(offset, l.store.len())
	if offset == l.vp.offset {
		return
	}
	l.vp.offset = offset
	l.scroll.SetValue(offset)
	l.syncHover()
	l.repaintAll()
}

// scrollValueChanged follows the scrollbar when the host moves it.
func (l *List) scrollValueChanged(value int) {
	if value == l.vp.offset {
		return
	}
	l.setOffset(value)
	if l.vp.offset != value {
		// The host's range disagrees with ours; pull it back.
		l.scroll.SetValue(l.vp.offset)
	}
}

// updateScrollRange recomputes the scrollbar range, page step and
// visibility, then re-clamps the offset. It runs after every change to
// the item count, row geometry or viewport size.
func (l *List) updateScrollRange() {
	count := l.store.len()
	maxScroll := l.vp.maxScroll(count)
	pageStep := l.vp.pageStep()

	l.scroll.SetRange(0, maxScroll)
	l.scroll.SetPageStep(pageStep)
	l.scroll.SetVisible(count > pageStep)

	if clamped := l.vp.clampOffset(l.vp.offset, count); clamped != l.vp.offset {
		l.vp.offset = clamped
	}
	l.syncHover()
	if l.scroll.Value() != l.vp.offset {
		l.scroll.SetValue(l.vp.offset)
	}
}
