package listkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
)

func TestHitTest_IndexAt(t *testing.T) {
	l := newList(t, constants.SelectionSingle, 20)

	tests := []struct {
		name string
		p    listkit.Point
		want int
	}{
		{"first row top", listkit.Point{X: 0, Y: 0}, 0},
		{"first row bottom", listkit.Point{X: 10, Y: 39}, 0},
		{"spacing belongs to row above", listkit.Point{X: 10, Y: 41}, 0},
		{"second row", listkit.Point{X: 10, Y: 42}, 1},
		{"last pixel of content", listkit.Point{X: testWidth - constants.DefaultScrollbarWidth - 1, Y: testHeight - 1}, 4},
		{"scrollbar strip", listkit.Point{X: testWidth - constants.DefaultScrollbarWidth, Y: 10}, listkit.NoIndex},
		{"left of widget", listkit.Point{X: -1, Y: 10}, listkit.NoIndex},
		{"above widget", listkit.Point{X: 10, Y: -1}, listkit.NoIndex},
		{"below widget", listkit.Point{X: 10, Y: testHeight}, listkit.NoIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.IndexAt(tt.p))
		})
	}
}

func TestHitTest_IndexAtFollowsOffset(t *testing.T) {
	l := newList(t, constants.SelectionSingle, 20)
	l.ScrollToItem(12)

	assert.Equal(t, 8, l.IndexAt(listkit.Point{X: 5, Y: 5}))
	assert.Equal(t, 12, l.IndexAt(listkit.Point{X: 5, Y: 4*testStride + 1}))
}

func TestHitTest_IndexAtBelowLastRow(t *testing.T) {
	l := newList(t, constants.SelectionSingle, 2)

	assert.Equal(t, 1, l.IndexAt(listkit.Point{X: 5, Y: testStride + 1}))
	assert.Equal(t, listkit.NoIndex, l.IndexAt(listkit.Point{X: 5, Y: 2*testStride + 1}))
}

func TestHitTest_MousePressClicks(t *testing.T) {
	l := newList(t, constants.SelectionMulti, 20)
	rec := record(l)

	l.MousePress(listkit.Point{X: 20, Y: 2*testStride + 3}, constants.ModNone)
	l.MousePress(listkit.Point{X: 20, Y: 4*testStride + 3}, constants.ModShift)

	assert.Equal(t, []int{2, 3, 4}, l.SelectedIndices())
	assert.Equal(t, 4, l.CurrentIndex())
	assert.Contains(t, rec.kinds(), listkit.EventItemClicked)

	rec.reset()
	l.MousePress(listkit.Point{X: 20, Y: testHeight + 10}, constants.ModNone)
	assert.Empty(t, rec.events)
}

func TestHitTest_MousePressPagesScrollbar(t *testing.T) {
	l := newList(t, constants.SelectionSingle, 20)
	strip := l.ScrollbarRect()

	l.MousePress(listkit.Point{X: strip.X + 2, Y: testHeight - 1}, constants.ModNone)
	assert.Equal(t, 5, l.ScrollOffset())
	assert.Equal(t, 0, l.CurrentIndex(), "strip presses never select")

	l.MousePress(listkit.Point{X: strip.X + 2, Y: 0}, constants.ModNone)
	assert.Equal(t, 0, l.ScrollOffset())
}

func TestHitTest_DoubleClickMiss(t *testing.T) {
	l := newList(t, constants.SelectionSingle, 2)
	rec := record(l)

	l.MouseDoubleClick(listkit.Point{X: 5, Y: testHeight - 5})

	assert.Empty(t, rec.events)
}

func TestHitTest_HoverRepaintsOnlyChangedRows(t *testing.T) {
	l := newList(t, constants.SelectionSingle, 20)
	rec := record(l)

	l.MouseMove(listkit.Point{X: 10, Y: 10})
	assert.Equal(t, 0, l.HoverIndex())
	assert.Equal(t, []listkit.Rect{rowRect(0, 0)}, rec.repaints)

	rec.reset()
	l.MouseMove(listkit.Point{X: 30, Y: 20})
	assert.Empty(t, rec.repaints, "moving within a row repaints nothing")

	l.MouseMove(listkit.Point{X: 10, Y: 2*testStride + 1})
	assert.Equal(t, 2, l.HoverIndex())
	assert.Equal(t, []listkit.Rect{rowRect(0, 0), rowRect(2, 0)}, rec.repaints)

	rec.reset()
	l.MouseLeave()
	assert.Equal(t, listkit.NoIndex, l.HoverIndex())
	assert.Equal(t, []listkit.Rect{rowRect(2, 0)}, rec.repaints)
	assert.Empty(t, rec.events)
}

func TestHitTest_HoverStaysUnderPointerAcrossRemovals(t *testing.T) {
	l := newList(t, constants.SelectionSingle, 10)
	pointer := listkit.Point{X: 10, Y: 3*testStride + 1}
	l.MouseMove(pointer)
	require.Equal(t, 3, l.HoverIndex())

	require.NoError(t, l.RemoveItem(0))
	assert.Equal(t, 3, l.HoverIndex())
	assert.Equal(t, l.IndexAt(pointer), l.HoverIndex())

	for l.Count() > 3 {
		require.NoError(t, l.RemoveItem(l.Count()-1))
	}
	assert.Equal(t, listkit.NoIndex, l.HoverIndex(), "no row under the pointer")

	l.AddText("back under the pointer")
	assert.Equal(t, 3, l.HoverIndex())
}

func TestHitTest_HoverFollowsResize(t *testing.T) {
	l := newList(t, constants.SelectionSingle, 10)
	pointer := listkit.Point{X: 10, Y: 4*testStride + 1}
	l.MouseMove(pointer)
	require.Equal(t, 4, l.HoverIndex())

	l.Resize(testWidth, 100)
	assert.Equal(t, listkit.NoIndex, l.HoverIndex())

	l.Resize(testWidth, testHeight)
	assert.Equal(t, 4, l.HoverIndex())
}
