package listkit

// EventKind identifies a notification emitted by a List.
type EventKind int

const (
	EventItemClicked          EventKind = iota // A row was clicked (any selection mode)
	EventItemDoubleClicked                     // A row was double-clicked or activated with Enter
	EventCurrentItemChanged                    // The current index changed; Index is new, Previous is old
	EventItemSelectionChanged                  // The selected set may have changed
)

func (k EventKind) String() string {
	switch k {
	case EventItemClicked:
		return "item_clicked"
	case EventItemDoubleClicked:
		return "item_double_clicked"
	case EventCurrentItemChanged:
		return "current_item_changed"
	case EventItemSelectionChanged:
		return "item_selection_changed"
	default:
		return "unknown"
	}
}

// Event is a single notification. Index and Previous are NoIndex where
// they do not apply.
type Event struct {
	Kind     EventKind
	Index    int
	Previous int
}

// emitter fans notifications out to registered observers synchronously,
// in registration order, within the call that caused them.
type emitter struct {
	clicked       []func(index int)
	doubleClicked []func(index int)
	current       []func(current, previous int)
	selection     []func()
	repaint       []func(area Rect)
	all           []func(Event)
}

func (e *emitter) itemClicked(index int) {
	for _, fn := range e.clicked {
		fn(index)
	}
	e.broadcast(Event{Kind: EventItemClicked, Index: index, Previous: NoIndex})
}

func (e *emitter) itemDoubleClicked(index int) {
	for _, fn := range e.doubleClicked {
		fn(index)
	}
	e.broadcast(Event{Kind: EventItemDoubleClicked, Index: index, Previous: NoIndex})
}

func (e *emitter) currentItemChanged(current, previous int) {
	for _, fn := range e.current {
		fn(current, previous)
	}
	e.broadcast(Event{Kind: EventCurrentItemChanged, Index: current, Previous: previous})
}

func (e *emitter) itemSelectionChanged() {
	for _, fn := range e.selection {
		fn()
	}
	e.broadcast(Event{Kind: EventItemSelectionChanged, Index: NoIndex, Previous: NoIndex})
}

func (e *emitter) broadcast(ev Event) {
	for _, fn := range e.all {
		fn(ev)
	}
}

func (e *emitter) requestRepaint(area Rect) {
	if area.Empty() {
		return
	}
	for _, fn := range e.repaint {
		fn(area)
	}
}

// OnItemClicked registers fn to run when a row is clicked.
func (l *List) OnItemClicked(fn func(index int)) {
	l.events.clicked = append(l.events.clicked, fn)
}

// OnItemDoubleClicked registers fn to run when a row is double-clicked.
func (l *List) OnItemDoubleClicked(fn func(index int)) {
	l.events.doubleClicked = append(l.events.doubleClicked, fn)
}

// OnCurrentItemChanged registers fn to run when the current index changes.
func (l *List) OnCurrentItemChanged(fn func(current, previous int)) {
	l.events.current = append(l.events.current, fn)
}

// OnItemSelectionChanged registers fn to run after the selection changes.
func (l *List) OnItemSelectionChanged(fn func()) {
	l.events.selection = append(l.events.selection, fn)
}

// OnRepaint registers fn to receive the areas that need painting. A
// structural or scroll change reports the whole viewport; hover moves and
// UpdateItem report single rows.
func (l *List) OnRepaint(fn func(area Rect)) {
	l.events.repaint = append(l.events.repaint, fn)
}

// OnEvent registers fn to receive every notification as an Event, after
// the typed observers for that notification have run.
func (l *List) OnEvent(fn func(Event)) {
	l.events.all = append(l.events.all, fn)
}
