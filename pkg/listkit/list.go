package listkit

import (
	"image/color"
	"log/slog"

	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/BrandonKowalski/listkit/pkg/listkit/internal"
)

// ListSettings configures a List. Start from DefaultListSettings and
// override what you need; invalid geometry falls back to the defaults.
type ListSettings struct {
	ItemHeight     int
	Spacing        int
	ScrollbarWidth int // Strip on the right edge reserved for the scrollbar
	SelectionMode  constants.SelectionMode
	TextPadding    internal.Padding
	Theme          internal.Theme
	ScrollBar      ScrollRange // nil uses a new Scrollbar
	// SelectionMarks draws a check icon on selected rows in Multi mode when
	// the canvas can draw icons.
	SelectionMarks bool
}

// DefaultListSettings returns the settings a plain New list uses.
func DefaultListSettings() ListSettings {
	return ListSettings{
		ItemHeight:     constants.DefaultItemHeight,
		Spacing:        constants.DefaultSpacing,
		ScrollbarWidth: constants.DefaultScrollbarWidth,
		SelectionMode:  constants.SelectionSingle,
		TextPadding:    internal.HorizontalPadding(constants.DefaultTextPadding),
		Theme:          internal.GetTheme(),
		SelectionMarks: true,
	}
}

// List is a self-painted, virtualized, selectable list. It owns its items,
// scroll position, hover and selection state, and paints only the visible
// rows onto a host-supplied Canvas.
//
// A List is not safe for concurrent use. Every method except Post must be
// called from the host's UI loop; background work reaches the list through
// Post and Drain. The mailbox behind Post is the only locked path; row,
// selection and scroll state are never locked.
type List struct {
	store  itemStore
	sel    selection
	vp     viewport
	scroll ScrollRange

	scrollbarWidth int
	padding        internal.Padding
	theme          internal.Theme
	selectionMarks bool
	hover          int
	pointer        Point
	pointerInside  bool

	events  emitter
	mailbox mailbox
	log     *slog.Logger
}

// New creates an empty list.
func New(settings ListSettings) *List {
	defaults := DefaultListSettings()
	if settings.ItemHeight < 1 {
		settings.ItemHeight = defaults.ItemHeight
	}
	if settings.Spacing < 0 {
		settings.Spacing = defaults.Spacing
	}
	if settings.ScrollbarWidth < 0 {
		settings.ScrollbarWidth = defaults.ScrollbarWidth
	}
	if settings.ScrollBar == nil {
		settings.ScrollBar = NewScrollbar()
	}
	if settings.Theme == (internal.Theme{}) {
		settings.Theme = defaults.Theme
	}

	l := &List{
		sel: newSelection(settings.SelectionMode),
		vp: viewport{
			itemHeight: settings.ItemHeight,
			spacing:    settings.Spacing,
		},
		scroll:         settings.ScrollBar,
		scrollbarWidth: settings.ScrollbarWidth,
		padding:        settings.TextPadding,
		theme:          settings.Theme,
		selectionMarks: settings.SelectionMarks,
		hover:          NoIndex,
		log:            internal.GetInternalLogger(),
	}

	l.scroll.OnValueChanged(l.scrollValueChanged)
	l.updateScrollRange()
	return l
}

// AddItem appends a row and returns its index. The first row added to a
// list without a current item becomes current (except in None mode).
func (l *List) AddItem(text string, textColor, backgroundColor color.RGBA, font FontSpec) int {
	return l.Append(Item{
		Text:            text,
		TextColor:       textColor,
		BackgroundColor: backgroundColor,
		Font:            font,
	})
}

// AddText appends a row using the theme's default item colours.
func (l *List) AddText(text string) int {
	return l.AddItem(text, l.theme.ItemTextColor, l.theme.ItemBackgroundColor, FontSpec{})
}

// Append adds item at the end of the list and returns its index.
func (l *List) Append(item Item) int {
	index := l.store.add(item)
	l.updateScrollRange()

	if l.store.len() == 1 && l.sel.current == NoIndex && l.sel.mode != constants.SelectionNone {
		l.SetCurrentIndex(0)
	}

	l.repaintAll()
	return index
}

// RemoveItem deletes the row at index. Later rows move up by one, and the
// selection and current index are renumbered to follow them. When the
// current row itself is removed, the row that slides into its place (or
// the new last row) becomes current and a current-changed event fires.
func (l *List) RemoveItem(index int) error {
	if !l.store.valid(index) {
		l.log.Debug("Ignoring remove of missing item", "index", index, "count", l.store.len())
		return outOfRange("remove item", index, l.store.len())
	}

	previous := l.sel.current
	l.store.removeAt(index)
	currentHit, selectionHit := l.sel.removed(index, l.store.len())

	l.updateScrollRange()

	if currentHit {
		l.events.currentItemChanged(l.sel.current, previous)
	}
	if selectionHit {
		l.events.itemSelectionChanged()
	}

	l.repaintAll()
	return nil
}

// Clear removes every row and resets selection, hover and scroll position.
func (l *List) Clear() {
	previous := l.sel.current
	hadSelection := len(l.sel.selected) > 0

	l.store.clear()
	l.sel.reset()
	l.updateScrollRange()

	if previous != NoIndex {
		l.events.currentItemChanged(NoIndex, previous)
	}
	if hadSelection {
		l.events.itemSelectionChanged()
	}

	l.repaintAll()
}

// Count returns the number of rows.
func (l *List) Count() int {
	return l.store.len()
}

// ItemAt returns a copy of the row at index.
func (l *List) ItemAt(index int) (Item, bool) {
	if !l.store.valid(index) {
		return Item{}, false
	}
	return *l.store.at(index), true
}

// SetItem replaces the row at index and repaints it.
func (l *List) SetItem(index int, item Item) error {
	return l.mutateItem("set item", index, func(it *Item) { *it = item })
}

// SetItemText changes the text of the row at index and repaints it.
func (l *List) SetItemText(index int, text string) error {
	return l.mutateItem("set item text", index, func(it *Item) { it.Text = text })
}

// SetItemTextColor changes the text colour of the row at index.
func (l *List) SetItemTextColor(index int, c color.RGBA) error {
	return l.mutateItem("set item text color", index, func(it *Item) { it.TextColor = c })
}

// SetItemBackgroundColor changes the background colour of the row at index.
func (l *List) SetItemBackgroundColor(index int, c color.RGBA) error {
	return l.mutateItem("set item background color", index, func(it *Item) { it.BackgroundColor = c })
}

// SetItemFont changes the font of the row at index.
func (l *List) SetItemFont(index int, font FontSpec) error {
	return l.mutateItem("set item font", index, func(it *Item) { it.Font = font })
}

func (l *List) mutateItem(op string, index int, fn func(*Item)) error {
	if !l.store.valid(index) {
		l.log.Debug("Ignoring edit of missing item", "op", op, "index", index, "count", l.store.len())
		return outOfRange(op, index, l.store.len())
	}
	fn(l.store.at(index))
	l.UpdateItem(index)
	return nil
}

// UpdateItem requests a repaint of a single row, if it is on screen.
func (l *List) UpdateItem(index int) {
	if !l.store.valid(index) {
		return
	}
	l.repaintRow(index)
}

// ItemHeight returns the row height in pixels.
func (l *List) ItemHeight() int {
	return l.vp.itemHeight
}

// SetItemHeight changes the row height. Heights below one are rejected.
func (l *List) SetItemHeight(height int) error {
	if height < 1 {
		l.log.Debug("Ignoring item height", "height", height)
		return invalidParameter("set item height", "height", height)
	}
	l.vp.itemHeight = height
	l.updateScrollRange()
	l.repaintAll()
	return nil
}

// Spacing returns the gap between rows in pixels.
func (l *List) Spacing() int {
	return l.vp.spacing
}

// SetSpacing changes the gap between rows. Negative spacing is rejected.
func (l *List) SetSpacing(spacing int) error {
	if spacing < 0 {
		l.log.Debug("Ignoring spacing", "spacing", spacing)
		return invalidParameter("set spacing", "spacing", spacing)
	}
	l.vp.spacing = spacing
	l.updateScrollRange()
	l.repaintAll()
	return nil
}

// SelectionMode returns the active selection mode.
func (l *List) SelectionMode() constants.SelectionMode {
	return l.sel.mode
}

// SetSelectionMode switches modes. Switching to None clears the selection
// and the current index; switching to Single keeps only the current row
// selected; switching to Multi keeps everything.
func (l *List) SetSelectionMode(mode constants.SelectionMode) {
	switch mode {
	case constants.SelectionSingle, constants.SelectionMulti, constants.SelectionNone:
	default:
		l.log.Debug("Ignoring unknown selection mode", "mode", int(mode))
		return
	}

	previous := l.sel.current
	before := l.sel.snapshot()
	l.sel.setMode(mode)

	if l.sel.current != previous {
		l.events.currentItemChanged(l.sel.current, previous)
	}
	if !l.sel.sameAs(before) {
		l.events.itemSelectionChanged()
	}
	l.repaintAll()
}

// CurrentIndex returns the focused row, or NoIndex.
func (l *List) CurrentIndex() int {
	return l.sel.current
}

// SetCurrentIndex focuses the row at index, or clears focus with NoIndex.
// Invalid indices, the current index itself, and any index other than
// NoIndex in None mode are ignored. In Single mode the selection follows
// the current row. The row is scrolled into view.
func (l *List) SetCurrentIndex(index int) {
	if index < NoIndex || index >= l.store.len() || index == l.sel.current {
		return
	}
	if l.sel.mode == constants.SelectionNone && index != NoIndex {
		return
	}

	previous := l.sel.current
	l.sel.current = index
	if l.sel.mode == constants.SelectionSingle {
		l.sel.collapse()
	}

	if index != NoIndex {
		l.ScrollToItem(index)
	}

	l.events.currentItemChanged(index, previous)
	l.events.itemSelectionChanged()

	l.repaintRow(previous)
	l.repaintRow(index)
}

// SelectedIndices returns the selected rows in ascending order.
func (l *List) SelectedIndices() []int {
	return l.sel.indices()
}

// IsSelected reports whether the row at index is selected.
func (l *List) IsSelected(index int) bool {
	return l.sel.isSelected(index)
}

// ClickItem applies a click on the row at index with the given modifiers,
// as if the pointer had been pressed on it.
//
// In Single mode the row becomes current. In Multi mode a plain click
// selects only the row, ctrl toggles it, and shift adds the range from the
// current row; the row then becomes current. In None mode nothing changes.
// An item-clicked event fires in every mode.
func (l *List) ClickItem(index int, mods constants.Modifier) {
	if !l.store.valid(index) {
		return
	}

	switch l.sel.mode {
	case constants.SelectionMulti:
		l.sel.applyClick(index, mods)
		l.SetCurrentIndex(index)
		l.events.itemClicked(index)
		l.events.itemSelectionChanged()
		l.repaintAll()
	case constants.SelectionSingle:
		l.SetCurrentIndex(index)
		l.events.itemClicked(index)
	default:
		l.events.itemClicked(index)
	}
}

// HoverIndex returns the row under the pointer, or NoIndex.
func (l *List) HoverIndex() int {
	return l.hover
}

// Theme returns the colours the list paints with.
func (l *List) Theme() internal.Theme {
	return l.theme
}

// SetTheme replaces the colours the list paints with.
func (l *List) SetTheme(theme internal.Theme) {
	l.theme = theme
	l.repaintAll()
}

// Bounds returns the widget rectangle set by the last Resize.
func (l *List) Bounds() Rect {
	return Rect{W: l.vp.width, H: l.vp.height}
}

// ContentRect is the area rows are painted in: the bounds minus the
// scrollbar strip.
func (l *List) ContentRect() Rect {
	return Rect{W: max(0, l.vp.width-l.scrollbarWidth), H: l.vp.height}
}

// ScrollbarRect is the strip on the right edge reserved for the scrollbar.
func (l *List) ScrollbarRect() Rect {
	w := min(l.scrollbarWidth, l.vp.width)
	return Rect{X: l.vp.width - w, W: w, H: l.vp.height}
}

// ItemRect returns where the row at index is painted. ok is false for
// rows outside the visible range.
func (l *List) ItemRect(index int) (r Rect, ok bool) {
	if !l.VisibleItemRange().Contains(index) {
		return Rect{}, false
	}
	content := l.ContentRect()
	return Rect{X: 0, Y: l.vp.rowTop(index), W: content.W, H: l.vp.itemHeight}, true
}

// Resize sets the widget size in pixels and recomputes the scroll range.
func (l *List) Resize(width, height int) {
	if width < 0 || height < 0 {
		l.log.Debug("Ignoring resize", "width", width, "height", height)
		return
	}
	l.vp.width, l.vp.height = width, height
	l.updateScrollRange()
	l.repaintAll()
}

func (l *List) repaintAll() {
	l.events.requestRepaint(l.Bounds())
}

func (l *List) repaintRow(index int) {
	if r, ok := l.ItemRect(index); ok {
		l.events.requestRepaint(r)
	}
}
