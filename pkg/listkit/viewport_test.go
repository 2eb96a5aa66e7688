package listkit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
)

func TestViewport_Geometry(t *testing.T) {
	tests := []struct {
		name      string
		vp        viewport
		count     int
		pageStep  int
		maxScroll int
		visible   Range
	}{
		{"exact fit", viewport{itemHeight: 40, spacing: 2, height: 210}, 20, 5, 15, Range{0, 4}},
		{"partial trailing row", viewport{itemHeight: 40, spacing: 2, height: 220}, 20, 5, 15, Range{0, 5}},
		{"fewer rows than page", viewport{itemHeight: 40, spacing: 2, height: 210}, 3, 5, 0, Range{0, 2}},
		{"no spacing", viewport{itemHeight: 10, height: 95}, 100, 9, 91, Range{0, 9}},
		{"scrolled", viewport{offset: 7, itemHeight: 40, spacing: 2, height: 210}, 20, 5, 15, Range{7, 11}},
		{"zero height", viewport{itemHeight: 40, spacing: 2}, 20, 0, 20, emptyRange},
		{"empty", viewport{itemHeight: 40, spacing: 2, height: 210}, 0, 5, 0, emptyRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.pageStep, tt.vp.pageStep())
			assert.Equal(t, tt.maxScroll, tt.vp.maxScroll(tt.count))
			assert.Equal(t, tt.visible, tt.vp.visibleRange(tt.count))
		})
	}
}

func TestViewport_ClampOffset(t *testing.T) {
	vp := viewport{itemHeight: 40, spacing: 2, height: 210}

	assert.Equal(t, 0, vp.clampOffset(-4, 20))
	assert.Equal(t, 15, vp.clampOffset(99, 20))
	assert.Equal(t, 9, vp.clampOffset(9, 20))
	assert.Equal(t, 0, vp.clampOffset(9, 2))
}

func TestRange(t *testing.T) {
	assert.True(t, emptyRange.Empty())
	assert.Equal(t, 0, emptyRange.Len())
	assert.False(t, emptyRange.Contains(-1))

	r := Range{First: 3, Last: 5}
	assert.Equal(t, 3, r.Len())
	assert.True(t, r.Contains(3))
	assert.True(t, r.Contains(5))
	assert.False(t, r.Contains(6))
}

func TestSelection_RemovedRenumbers(t *testing.T) {
	s := newSelection(constants.SelectionMulti)
	s.current = 4
	for _, i := range []int{0, 2, 4, 6} {
		s.selected[i] = struct{}{}
	}

	currentHit, selectionHit := s.removed(3, 6)

	assert.False(t, currentHit)
	assert.False(t, selectionHit, "the same items stay selected")
	assert.Equal(t, 3, s.current)
	assert.Equal(t, []int{0, 2, 3, 5}, s.indices())
}

func TestSelection_SetModeTransitions(t *testing.T) {
	s := newSelection(constants.SelectionMulti)
	s.current = 2
	s.selected[1] = struct{}{}
	s.selected[2] = struct{}{}

	s.setMode(constants.SelectionSingle)
	assert.Equal(t, []int{2}, s.indices())

	s.setMode(constants.SelectionMulti)
	assert.Equal(t, []int{2}, s.indices())

	s.setMode(constants.SelectionNone)
	assert.Empty(t, s.indices())
	assert.Equal(t, NoIndex, s.current)
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}

	assert.True(t, r.Contains(Point{10, 10}))
	assert.False(t, r.Contains(Point{30, 10}))
	assert.Equal(t, Rect{X: 20, Y: 20, W: 10, H: 10}, r.Intersect(Rect{X: 20, Y: 20, W: 50, H: 50}))
	assert.True(t, r.Intersect(Rect{X: 30, Y: 0, W: 5, H: 5}).Empty())
	assert.Equal(t, Rect{X: 15, Y: 10, W: 0, H: 20}, r.Inset(5, 0, 30, 0))
}
