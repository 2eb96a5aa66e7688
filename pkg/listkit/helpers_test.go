package listkit_test

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
)

// Geometry used throughout: 40px rows, 2px spacing, a 200x210 widget with
// a 16px scrollbar strip. Five rows fit exactly.
const (
	testWidth  = 200
	testHeight = 210
	testStride = 42
)

type fillOp struct {
	Rect  listkit.Rect
	Color color.RGBA
}

type textOp struct {
	Rect  listkit.Rect
	Text  string
	Font  listkit.FontSpec
	Color color.RGBA
}

type iconOp struct {
	Rect  listkit.Rect
	Icon  constants.Icon
	Color color.RGBA
}

// recordingCanvas measures every rune as 8x16 and records draw calls.
type recordingCanvas struct {
	fills    []fillOp
	texts    []textOp
	ops      []string
	measures int
}

func (c *recordingCanvas) FillRect(r listkit.Rect, col color.RGBA) {
	c.fills = append(c.fills, fillOp{Rect: r, Color: col})
	c.ops = append(c.ops, "fill")
}

func (c *recordingCanvas) DrawText(r listkit.Rect, text string, font listkit.FontSpec, col color.RGBA, _ constants.TextAlign) {
	c.texts = append(c.texts, textOp{Rect: r, Text: text, Font: font, Color: col})
	c.ops = append(c.ops, "text")
}

func (c *recordingCanvas) MeasureText(text string, _ listkit.FontSpec) (int, int) {
	c.measures++
	return 8 * len([]rune(text)), 16
}

func (c *recordingCanvas) fillsAt(r listkit.Rect) []color.RGBA {
	var out []color.RGBA
	for _, f := range c.fills {
		if f.Rect == r {
			out = append(out, f.Color)
		}
	}
	return out
}

type iconCanvas struct {
	recordingCanvas
	icons []iconOp
}

func (c *iconCanvas) DrawIcon(r listkit.Rect, icon constants.Icon, col color.RGBA) {
	c.icons = append(c.icons, iconOp{Rect: r, Icon: icon, Color: col})
	c.ops = append(c.ops, "icon")
}

type eventRecorder struct {
	events   []listkit.Event
	repaints []listkit.Rect
}

func record(l *listkit.List) *eventRecorder {
	r := &eventRecorder{}
	l.OnEvent(func(ev listkit.Event) { r.events = append(r.events, ev) })
	l.OnRepaint(func(area listkit.Rect) { r.repaints = append(r.repaints, area) })
	return r
}

func (r *eventRecorder) reset() {
	r.events = nil
	r.repaints = nil
}

func (r *eventRecorder) kinds() []listkit.EventKind {
	out := make([]listkit.EventKind, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind
	}
	return out
}

func newList(t *testing.T, mode constants.SelectionMode, n int) *listkit.List {
	t.Helper()

	settings := listkit.DefaultListSettings()
	settings.SelectionMode = mode
	l := listkit.New(settings)
	l.Resize(testWidth, testHeight)
	for i := 0; i < n; i++ {
		l.AddText(fmt.Sprintf("item %d", i))
	}
	return l
}

func rowRect(index, offset int) listkit.Rect {
	return listkit.Rect{X: 0, Y: (index - offset) * testStride, W: testWidth - constants.DefaultScrollbarWidth, H: 40}
}

func texts(l *listkit.List) []string {
	out := make([]string, l.Count())
	for i := range out {
		item, _ := l.ItemAt(i)
		out[i] = item.Text
	}
	return out
}
